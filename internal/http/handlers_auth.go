package httpx

import (
	"errors"
	"net/http"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/service"
)

// AuthHandlers provides HTTP handlers for admin authentication.
type AuthHandlers struct {
	Svc *service.AuthService
}

// Login handles POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.Svc.Login(req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

// Verify handles GET /api/auth/verify. It runs behind RequireAuth, so the
// admin identity is always present in the context.
func (h *AuthHandlers) Verify(w http.ResponseWriter, r *http.Request) {
	user, ok := AdminFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "unauthorized",
			Err:     errors.New("Unauthorized"),
		})
		return
	}

	WriteJSON(w, http.StatusOK, model.VerifyResponse{Valid: true, User: *user})
}
