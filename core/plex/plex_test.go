package plex

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"PlexFM/config"
)

// newTestClient starts a fake server and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.Config{
		BaseURL:  srv.URL,
		Token:    "test-token",
		ClientID: "test-client",
		Timeout:  5 * time.Second,
		Product:  "PlexFM",
		Version:  "test",
	})
}

func xmlHandler(routes map[string]string) http.Handler {
	mux := http.NewServeMux()
	for path, body := range routes {
		payload := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write([]byte(payload))
		})
	}
	return mux
}
