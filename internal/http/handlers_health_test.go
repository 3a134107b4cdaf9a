package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	healthHandler(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok","service":"portfolio-api"}`, w.Body.String())
}

func TestHealthHandler_HeadHasNoBody(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	healthHandler(w, httptest.NewRequest(http.MethodHead, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRouter_UnknownAPIPathReturnsJSON404(t *testing.T) {
	t.Parallel()

	authSvc := newTestAuthService()
	handler := NewRouter(RouterServices{Auth: authSvc, Logger: discardLogger()})

	r := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not_found","message":"Endpoint not found"}`, w.Body.String())
}

func TestRouter_HealthWiredThroughMiddleware(t *testing.T) {
	t.Parallel()

	handler := NewRouter(RouterServices{
		Auth:        newTestAuthService(),
		CORSOrigins: "http://localhost:3000",
		Logger:      discardLogger(),
	})

	r := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
