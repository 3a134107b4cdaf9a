package service

import (
	"context"
	"io"

	apperrors "github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/errors"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/storage"
)

// UploadResult is the response payload for a stored upload.
type UploadResult struct {
	FileName string `json:"fileName"`
	FileURL  string `json:"fileUrl"`
}

// UploadService stores uploaded files through the configured backend.
type UploadService struct {
	store storage.Store
}

// NewUploadService constructs a new UploadService.
func NewUploadService(store storage.Store) *UploadService {
	return &UploadService{store: store}
}

// Save persists the uploaded file and returns its stored name and public URL.
func (s *UploadService) Save(ctx context.Context, originalName string, contentType string, r io.Reader) (*UploadResult, error) {
	if originalName == "" {
		return nil, apperrors.Validation("file is required")
	}

	_, url, err := s.store.Save(ctx, originalName, contentType, r)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to store uploaded file")
	}
	// fileName echoes the client's original name; the stored key is opaque.
	return &UploadResult{FileName: originalName, FileURL: url}, nil
}
