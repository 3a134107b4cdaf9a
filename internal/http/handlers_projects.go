package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/service"
)

// ProjectHandlers provides HTTP handlers for portfolio projects.
type ProjectHandlers struct {
	Svc    *service.ProjectService
	Cache  *data.ContentCache
	Logger *slog.Logger
}

// List handles GET /api/projects with page, pageSize and search params.
func (h *ProjectHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := ParsePageQuery(r)
	serveCached(w, r, h.Cache, h.Logger, cachePrefixProjects, func() (any, error) {
		return h.Svc.List(r.Context(), q)
	})
}

// Get handles GET /api/projects/{idOrSlug}.
func (h *ProjectHandlers) Get(w http.ResponseWriter, r *http.Request) {
	idOrSlug := r.PathValue("idOrSlug")
	if idOrSlug == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("project id or slug is required"),
		})
		return
	}

	serveCached(w, r, h.Cache, h.Logger, cachePrefixProjects, func() (any, error) {
		return h.Svc.Get(r.Context(), idOrSlug)
	})
}

// Create handles POST /api/projects.
func (h *ProjectHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProjectRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	project, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	invalidateCache(r, h.Cache, h.Logger, cachePrefixProjects)
	WriteJSON(w, http.StatusCreated, project)
}

// Update handles PUT /api/projects/{id}.
func (h *ProjectHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("project id is required"),
		})
		return
	}

	var req model.UpdateProjectRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	project, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	invalidateCache(r, h.Cache, h.Logger, cachePrefixProjects)
	WriteJSON(w, http.StatusOK, project)
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("project id is required"),
		})
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}

	invalidateCache(r, h.Cache, h.Logger, cachePrefixProjects)
	w.WriteHeader(http.StatusNoContent)
}
