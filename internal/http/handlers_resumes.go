package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/service"
)

// ResumeHandlers provides HTTP handlers for resume and CV documents.
type ResumeHandlers struct {
	Svc    *service.ResumeService
	Cache  *data.ContentCache
	Logger *slog.Logger
}

// List handles GET /api/resumes with page, pageSize and search params.
func (h *ResumeHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := ParsePageQuery(r)
	serveCached(w, r, h.Cache, h.Logger, cachePrefixResumes, func() (any, error) {
		return h.Svc.List(r.Context(), q)
	})
}

// GetPrimary handles GET /api/resumes/primary.
func (h *ResumeHandlers) GetPrimary(w http.ResponseWriter, r *http.Request) {
	serveCached(w, r, h.Cache, h.Logger, cachePrefixResumes, func() (any, error) {
		return h.Svc.GetPrimary(r.Context())
	})
}

// Create handles POST /api/resumes.
func (h *ResumeHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateResumeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	asset, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	invalidateCache(r, h.Cache, h.Logger, cachePrefixResumes)
	WriteJSON(w, http.StatusCreated, asset)
}

// Update handles PUT /api/resumes/{id}.
func (h *ResumeHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("resume id is required"),
		})
		return
	}

	var req model.UpdateResumeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	asset, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	invalidateCache(r, h.Cache, h.Logger, cachePrefixResumes)
	WriteJSON(w, http.StatusOK, asset)
}

// Delete handles DELETE /api/resumes/{id}.
func (h *ResumeHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("resume id is required"),
		})
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}

	invalidateCache(r, h.Cache, h.Logger, cachePrefixResumes)
	w.WriteHeader(http.StatusNoContent)
}
