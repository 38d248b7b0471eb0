// Package auth persists the backend session between CLI invocations. The
// token obtained from sign-in is cached as JSON under the user's config
// directory and turned back into an oauth2 token source on the next run.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

const (
	// TokenFile is where the session token (access token + user id) lives.
	TokenFile = "token.json"

	xdgAppName = "taskme"
)

// Session is the locally cached result of a successful sign-in.
type Session struct {
	UserID string        `json:"user_id"`
	Token  *oauth2.Token `json:"token"`
}

func GetXdgHome() (string, error) {
	xdgHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(xdgHome, ".config", xdgAppName), nil
}

func tokenPath() (string, error) {
	base, err := GetXdgHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, TokenFile), nil
}

// Load reads the cached session. A missing file returns (nil, nil) so callers
// can distinguish "not signed in" from a real error.
func Load() (*Session, error) {
	path, err := tokenPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var s Session
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode session from %s: %w", path, err)
	}
	return &s, nil
}

// Save caches the session to disk, read/write for the owner only.
func Save(s *Session) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache session token to %s: %w", path, err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(s)
}

// Clear removes the cached session, e.g. on sign-out.
func Clear() error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Client returns an HTTP client that attaches the session's bearer token to
// every request. With a nil session the plain default client is returned.
func (s *Session) Client(ctx context.Context) *http.Client {
	if s == nil || s.Token == nil {
		return http.DefaultClient
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(s.Token))
}
