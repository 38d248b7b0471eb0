// Package server implements the hosted backend of record the gateways talk
// to: an authentication surface plus resource-oriented task and profile
// endpoints over a relational store. It ships with the repo so the system
// runs end to end without external services.
package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const userIDKey = "user_id"

type Server struct {
	log *logrus.Logger
	st  *Storage
}

func New(st *Storage, log *logrus.Logger) *Server {
	return &Server{log: log, st: st}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	authRoutes := router.Group("/auth")
	authRoutes.POST("/sign_up", s.signUpAction)
	authRoutes.POST("/sign_in", s.signInAction)
	authRoutes.POST("/sign_out", s.requireSession, s.signOutAction)

	restRoutes := router.Group("/rest", s.requireSession)
	restRoutes.GET("/tasks", s.listTasksAction)
	restRoutes.POST("/tasks", s.createTaskAction)
	restRoutes.PATCH("/tasks/:taskID", s.updateTaskAction)
	restRoutes.DELETE("/tasks/:taskID", s.deleteTaskAction)
	restRoutes.GET("/profiles/:profileID", s.getProfileAction)
	restRoutes.PATCH("/profiles/:profileID", s.updateProfileAction)

	return router
}

// requireSession resolves the bearer token into a user id or rejects the
// request.
func (s *Server) requireSession(c *gin.Context) {
	token := extractBearerToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated"})
		return
	}

	userID, err := s.st.SessionUserID(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated"})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
