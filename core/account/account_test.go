package account

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PlexFM/config"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.Config{
		AccountURL: srv.URL,
		ClientID:   "test-client",
		Product:    "PlexFM",
		Version:    "test",
		Timeout:    5 * time.Second,
	})
}

func TestSignIn(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/users/signin", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "sam", r.PostForm.Get("login"))
		assert.Equal(t, "hunter2", r.PostForm.Get("password"))
		assert.Equal(t, "test-client", r.Header.Get("X-Plex-Client-Identifier"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"uuid":"ab12","username":"sam","email":"sam@example.com","authToken":"tok-123","homeAdmin":true}`))
	})
	c := newTestClient(t, mux)

	acct, err := c.SignIn(context.Background(), "sam", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "sam", acct.Username)
	assert.Equal(t, "tok-123", acct.AuthToken)
	assert.True(t, acct.HomeAdmin)

	// the token sticks for later calls
	assert.Equal(t, "tok-123", c.Token())
}

func TestSignInBadCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/users/signin", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	c := newTestClient(t, mux)

	_, err := c.SignIn(context.Background(), "sam", "wrong")
	require.Error(t, err)
	assert.Empty(t, c.Token())
}

func TestPing(t *testing.T) {
	var token string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/ping", func(w http.ResponseWriter, r *http.Request) {
		token = r.Header.Get("X-Plex-Token")
	})
	c := newTestClient(t, mux)
	c.token = "tok-123"

	require.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, "tok-123", token)
}

func TestDevices(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/devices.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"Bedroom","product":"PlexFM","clientIdentifier":"dev-1"},{"name":"Office","product":"PlexFM","clientIdentifier":"dev-2"}]`))
	})
	c := newTestClient(t, mux)

	devices, err := c.Devices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "Bedroom", devices[0].Name)
	assert.Equal(t, "dev-2", devices[1].ClientIdentifier)
}
