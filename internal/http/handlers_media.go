package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/service"
)

// MediaHandlers provides HTTP handlers for the photo gallery.
type MediaHandlers struct {
	Svc    *service.MediaService
	Cache  *data.ContentCache
	Logger *slog.Logger
}

// List handles GET /api/media with page, pageSize and search params.
func (h *MediaHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := ParsePageQuery(r)
	serveCached(w, r, h.Cache, h.Logger, cachePrefixMedia, func() (any, error) {
		return h.Svc.List(r.Context(), q)
	})
}

// Create handles POST /api/media.
func (h *MediaHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMediaRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	asset, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	invalidateCache(r, h.Cache, h.Logger, cachePrefixMedia)
	WriteJSON(w, http.StatusCreated, asset)
}

// Update handles PUT /api/media/{id}.
func (h *MediaHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("media id is required"),
		})
		return
	}

	var req model.UpdateMediaRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	asset, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	invalidateCache(r, h.Cache, h.Logger, cachePrefixMedia)
	WriteJSON(w, http.StatusOK, asset)
}

// Delete handles DELETE /api/media/{id}.
func (h *MediaHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("media id is required"),
		})
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}

	invalidateCache(r, h.Cache, h.Logger, cachePrefixMedia)
	w.WriteHeader(http.StatusNoContent)
}
