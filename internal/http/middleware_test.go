package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/config"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_ExactOriginAllowed(t *testing.T) {
	t.Parallel()

	handler := CORS("http://localhost:3000")(okHandler())

	r := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}

func TestCORS_OriginComparisonIsCaseAndSlashInsensitive(t *testing.T) {
	t.Parallel()

	handler := CORS("http://example.com")(okHandler())

	r := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	r.Header.Set("Origin", "HTTP://Example.COM/")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_WildcardSubdomain(t *testing.T) {
	t.Parallel()

	handler := CORS("*.vercel.app")(okHandler())

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"https://my-portfolio.vercel.app", true},
		{"https://preview-123.vercel.app", true},
		{"https://vercel.app", false},
		{"https://evil-vercel.app", false},
		{"https://example.com", false},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		r.Header.Set("Origin", tt.origin)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		if tt.allowed {
			assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"), "origin %s", tt.origin)
		} else {
			assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), "origin %s", tt.origin)
		}
	}
}

func TestCORS_AllowAll(t *testing.T) {
	t.Parallel()

	handler := CORS("*")(okHandler())

	r := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	r.Header.Set("Origin", "https://anything.example.org")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, "https://anything.example.org", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	t.Parallel()

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })
	handler := CORS("http://localhost:3000")(next)

	r := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, called)
}

func newTestAuthService() *service.AuthService {
	return service.NewAuthService(config.AuthConfig{
		AdminEmail:    "admin@example.com",
		AdminPassword: "hunter2",
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
	})
}

func TestRequireAuth_MissingTokenRejected(t *testing.T) {
	t.Parallel()

	handler := RequireAuth(newTestAuthService())(okHandler())

	r := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unauthorized", body["error"])
	assert.Equal(t, "Unauthorized", body["message"])
}

func TestRequireAuth_InvalidTokenRejected(t *testing.T) {
	t.Parallel()

	handler := RequireAuth(newTestAuthService())(okHandler())

	r := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	r.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid or expired token", body["message"])
}

func TestRequireAuth_ValidTokenExposesAdmin(t *testing.T) {
	t.Parallel()

	authSvc := newTestAuthService()
	resp, err := authSvc.Login(model.LoginRequest{Email: "admin@example.com", Password: "hunter2"})
	require.NoError(t, err)

	var sawEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := AdminFromContext(r.Context())
		require.True(t, ok)
		sawEmail = user.Email
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAuth(authSvc)(next)

	r := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	r.Header.Set("Authorization", "Bearer "+resp.Token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@example.com", sawEmail)
}

func TestRecover_PanicYields500(t *testing.T) {
	t.Parallel()

	handler := Recover(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLogging_PassesThrough(t *testing.T) {
	t.Parallel()

	handler := Logging(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	r := httptest.NewRequest(http.MethodPost, "/api/projects", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
}
