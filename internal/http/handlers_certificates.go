package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/service"
)

// CertificateHandlers provides HTTP handlers for certificates.
type CertificateHandlers struct {
	Svc    *service.CertificateService
	Cache  *data.ContentCache
	Logger *slog.Logger
}

// List handles GET /api/certificates with page, pageSize and search params.
func (h *CertificateHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := ParsePageQuery(r)
	serveCached(w, r, h.Cache, h.Logger, cachePrefixCertificates, func() (any, error) {
		return h.Svc.List(r.Context(), q)
	})
}

// Create handles POST /api/certificates.
func (h *CertificateHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCertificateRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	cert, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	invalidateCache(r, h.Cache, h.Logger, cachePrefixCertificates)
	WriteJSON(w, http.StatusCreated, cert)
}

// Update handles PUT /api/certificates/{id}.
func (h *CertificateHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("certificate id is required"),
		})
		return
	}

	var req model.UpdateCertificateRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	cert, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	invalidateCache(r, h.Cache, h.Logger, cachePrefixCertificates)
	WriteJSON(w, http.StatusOK, cert)
}

// Delete handles DELETE /api/certificates/{id}.
func (h *CertificateHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("certificate id is required"),
		})
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}

	invalidateCache(r, h.Cache, h.Logger, cachePrefixCertificates)
	w.WriteHeader(http.StatusNoContent)
}
