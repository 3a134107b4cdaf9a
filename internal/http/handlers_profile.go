package httpx

import (
	"log/slog"
	"net/http"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/service"
)

// ProfileHandlers provides HTTP handlers for the owner profile.
type ProfileHandlers struct {
	Svc    *service.ProfileService
	Cache  *data.ContentCache
	Logger *slog.Logger
}

// Get handles GET /api/profile.
func (h *ProfileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	serveCached(w, r, h.Cache, h.Logger, cachePrefixProfile, func() (any, error) {
		return h.Svc.Get(r.Context())
	})
}

// Update handles PUT /api/profile.
func (h *ProfileHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProfileRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	profile, err := h.Svc.Update(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	invalidateCache(r, h.Cache, h.Logger, cachePrefixProfile)
	WriteJSON(w, http.StatusOK, profile)
}
