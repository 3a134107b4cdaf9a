package httpx

import (
	"errors"
	"net/http"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/service"
)

// UploadHandlers provides HTTP handlers for file uploads.
type UploadHandlers struct {
	Svc      *service.UploadService
	MaxBytes int64
}

// Create handles POST /api/upload with a multipart "file" field.
func (h *UploadHandlers) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_upload",
			Err:     errors.New("No file uploaded"),
		})
		return
	}
	defer file.Close()

	result, err := h.Svc.Save(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, result)
}
