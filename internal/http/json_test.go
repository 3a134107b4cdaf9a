package httpx

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/errors"
)

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	WriteJSON(w, 201, map[string]string{"id": "abc"})

	assert.Equal(t, 201, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"abc"}`, w.Body.String())
}

func TestWriteAppError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			"validation",
			apperrors.Validation("Title is required"),
			400, "validation_failed", "Title is required",
		},
		{
			"unauthorized",
			apperrors.Unauthorized("Invalid credentials"),
			401, "unauthorized", "Invalid credentials",
		},
		{
			"not found",
			apperrors.NotFound("Project not found"),
			404, "not_found", "Project not found",
		},
		{
			"conflict",
			apperrors.Conflict("A project with this slug already exists"),
			409, "conflict", "A project with this slug already exists",
		},
		{
			"internal",
			apperrors.Wrap(errors.New("pq: connection refused"), apperrors.ErrCodeInternal, "query failed"),
			500, "internal_error", "Internal server error",
		},
		{
			"unknown error type",
			errors.New("pq: connection refused"),
			500, "internal_error", "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			WriteAppError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeErrorBody(t, w)
			assert.Equal(t, tt.wantCode, body["error"])
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestWriteAppError_InternalCauseNeverLeaks(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	WriteAppError(w, apperrors.Wrap(errors.New("password=secret host=10.0.0.1"), apperrors.ErrCodeInternal, "db error"))

	assert.NotContains(t, w.Body.String(), "secret")
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("POST", "/api/projects", strings.NewReader(`{"name":"demo"}`))
		w := httptest.NewRecorder()

		var dst payload
		require.True(t, DecodeJSON(w, r, &dst))
		assert.Equal(t, "demo", dst.Name)
	})

	t.Run("malformed body writes 400", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("POST", "/api/projects", strings.NewReader(`{"name":`))
		w := httptest.NewRecorder()

		var dst payload
		require.False(t, DecodeJSON(w, r, &dst))
		assert.Equal(t, 400, w.Code)
		assert.Equal(t, "invalid_json", decodeErrorBody(t, w)["error"])
	})
}
