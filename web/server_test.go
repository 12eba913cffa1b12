/* server_test.go
 * Unit tests for the keep-alive HTTP handlers
 */

package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return NewServer(Config{Log: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

// region handler tests

func TestRootHandler(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()

	s.handleRoot(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bot is alive!", rec.Body.String())
}

func TestRootHandlerUnknownPath(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()

	s.handleRoot(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()

	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Uptime)
}

func TestNewServerDefaults(t *testing.T) {
	s := NewServer(Config{})

	assert.Equal(t, ":8080", s.srv.Addr)
	assert.NotNil(t, s.cfg.Log)
}

// endregion
