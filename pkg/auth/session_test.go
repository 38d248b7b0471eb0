package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestSessionRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Nil(t, loaded, "missing token file means signed out, not an error")

	session := &Session{
		UserID: "user-1",
		Token: &oauth2.Token{
			AccessToken: "session-token",
			TokenType:   "Bearer",
			Expiry:      time.Now().Add(time.Hour).UTC(),
		},
	}
	require.NoError(t, Save(session))

	loaded, err = Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "user-1", loaded.UserID)
	assert.Equal(t, "session-token", loaded.Token.AccessToken)

	require.NoError(t, Clear())
	loaded, err = Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	require.NoError(t, Clear(), "clearing an already-missing session is fine")
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	session := &Session{
		UserID: "user-1",
		Token: &oauth2.Token{
			AccessToken: "session-token",
			TokenType:   "Bearer",
			Expiry:      time.Now().Add(time.Hour),
		},
	}

	resp, err := session.Client(context.Background()).Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer session-token", gotAuth)
}

func TestNilSessionClientIsPlain(t *testing.T) {
	var s *Session
	assert.Same(t, http.DefaultClient, s.Client(context.Background()))
}
