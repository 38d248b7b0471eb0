package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
)

// sessionTTL is reported to clients as expires_in. Sessions are not actually
// expired server-side; sign-out is the only way a token dies.
const sessionTTL = time.Hour

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) signUpAction(c *gin.Context) {
	const op = "server.signUpAction"
	log := s.log.WithField("operation", op)

	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request structure"})
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email, password and name are required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	userID := uuid.New().String()
	if err := s.st.CreateCredential(userID, req.Email, hash); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": "user already exists"})
			return
		}
		log.WithError(err).Error("failed to create credential")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	profile := model.User{
		ID:    userID,
		Email: req.Email,
		Name:  req.Name,
	}
	if err := s.st.InsertProfile(profile); err != nil {
		log.WithError(err).Error("failed to insert profile")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	log.WithField("user_id", userID).Info("user signed up")
	c.JSON(http.StatusCreated, gin.H{"user_id": userID})
}

func (s *Server) signInAction(c *gin.Context) {
	const op = "server.signInAction"
	log := s.log.WithField("operation", op)

	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request structure"})
		return
	}

	userID, hash, err := s.st.CredentialByEmail(req.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
			return
		}
		log.WithError(err).Error("failed to load credential")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	token := uuid.New().String()
	if err := s.st.CreateSession(token, userID, time.Now()); err != nil {
		log.WithError(err).Error("failed to create session")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	log.WithField("user_id", userID).Info("user signed in")
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int64(sessionTTL.Seconds()),
		"user_id":      userID,
	})
}

func (s *Server) signOutAction(c *gin.Context) {
	const op = "server.signOutAction"

	token := extractBearerToken(c)
	if err := s.st.DeleteSession(token); err != nil {
		s.log.WithField("operation", op).WithError(err).Error("failed to delete session")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getProfileAction(c *gin.Context) {
	const op = "server.getProfileAction"

	user, err := s.st.ProfileByID(c.Param("profileID"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "profile not found"})
			return
		}
		s.log.WithField("operation", op).WithError(err).Error("failed to load profile")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) updateProfileAction(c *gin.Context) {
	const op = "server.updateProfileAction"
	log := s.log.WithField("operation", op)

	var patch model.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request structure"})
		return
	}

	user, err := s.st.ProfileByID(c.Param("profileID"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "profile not found"})
			return
		}
		log.WithError(err).Error("failed to load profile")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	user = patch.Apply(user)
	if err := s.st.UpdateProfile(user); err != nil {
		log.WithError(err).Error("failed to update profile")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}
	c.JSON(http.StatusOK, user)
}
