package gateway

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/AFTLlimited25/Task-AI/pkg/auth"
	"github.com/AFTLlimited25/Task-AI/pkg/model"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      string `json:"user_id"`
}

// Auth is the auth/profile gateway. Same posture as the task gateway: each
// call independently manages the loading flag and error slot, and there is no
// cross-call coordination.
type Auth struct {
	c *Client

	mu      sync.Mutex
	loading bool
	lastErr string
}

func NewAuth(c *Client) *Auth {
	return &Auth{c: c}
}

func (g *Auth) Loading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loading
}

func (g *Auth) Err() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastErr
}

func (g *Auth) begin() {
	g.mu.Lock()
	g.loading = true
	g.lastErr = ""
	g.mu.Unlock()
}

func (g *Auth) finish(err error) {
	g.mu.Lock()
	if err != nil {
		g.lastErr = err.Error()
	}
	g.loading = false
	g.mu.Unlock()
}

// SignIn exchanges credentials for a session token, then fetches the profile
// row keyed by the session identity.
func (g *Auth) SignIn(ctx context.Context, email, password string) (*auth.Session, *model.User, error) {
	g.begin()
	session, user, err := g.signIn(ctx, email, password)
	g.finish(err)
	return session, user, err
}

func (g *Auth) signIn(ctx context.Context, email, password string) (*auth.Session, *model.User, error) {
	var tok tokenResponse
	if err := g.c.do(ctx, http.MethodPost, "/auth/sign_in", signInRequest{Email: email, Password: password}, &tok); err != nil {
		return nil, nil, err
	}

	session := &auth.Session{
		UserID: tok.UserID,
		Token: &oauth2.Token{
			AccessToken: tok.AccessToken,
			TokenType:   tok.TokenType,
			Expiry:      time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second),
		},
	}

	var user model.User
	authed := g.c.WithHTTPClient(session.Client(ctx))
	if err := authed.do(ctx, http.MethodGet, "/rest/profiles/"+tok.UserID, nil, &user); err != nil {
		return nil, nil, err
	}
	return session, &user, nil
}

// SignUp creates the auth identity and its profile row, returning the new
// user id. It does not sign the user in.
func (g *Auth) SignUp(ctx context.Context, email, password, name string) (string, error) {
	g.begin()
	var resp struct {
		UserID string `json:"user_id"`
	}
	err := g.c.do(ctx, http.MethodPost, "/auth/sign_up", signUpRequest{Email: email, Password: password, Name: name}, &resp)
	g.finish(err)
	if err != nil {
		return "", err
	}
	return resp.UserID, nil
}

// SignOut clears the remote session.
func (g *Auth) SignOut(ctx context.Context) error {
	g.begin()
	err := g.c.do(ctx, http.MethodPost, "/auth/sign_out", nil, nil)
	g.finish(err)
	return err
}

// Profile reads the profile row keyed by id.
func (g *Auth) Profile(ctx context.Context, id string) (*model.User, error) {
	g.begin()
	var user model.User
	err := g.c.do(ctx, http.MethodGet, "/rest/profiles/"+id, nil, &user)
	g.finish(err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile merges partial fields into the profile row keyed by id.
func (g *Auth) UpdateProfile(ctx context.Context, id string, patch model.ProfilePatch) (*model.User, error) {
	g.begin()
	var user model.User
	err := g.c.do(ctx, http.MethodPatch, "/rest/profiles/"+id, patch, &user)
	g.finish(err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
