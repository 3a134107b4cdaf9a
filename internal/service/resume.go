package service

import (
	"context"
	"errors"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	apperrors "github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/errors"
)

// ResumeService manages downloadable resume and CV documents. At most one
// document carries the primary flag at any time.
type ResumeService struct {
	repo *data.ResumeRepo
}

// NewResumeService constructs a new ResumeService.
func NewResumeService(repo *data.ResumeRepo) *ResumeService {
	return &ResumeService{repo: repo}
}

// Create creates a resume asset, demoting the previous primary when the new
// one is marked primary.
func (s *ResumeService) Create(ctx context.Context, req *model.CreateResumeRequest) (*model.ResumeAsset, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	asset, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create resume asset")
	}
	return asset, nil
}

// List returns one page of resume assets plus the total count, primary first.
func (s *ResumeService) List(ctx context.Context, q model.PageQuery) (*model.Page[model.ResumeAsset], error) {
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list resume assets")
	}
	return &model.Page[model.ResumeAsset]{Items: items, Total: total}, nil
}

// GetPrimary returns the current primary document.
func (s *ResumeService) GetPrimary(ctx context.Context) (*model.ResumeAsset, error) {
	asset, err := s.repo.GetPrimary(ctx)
	if err != nil {
		if errors.Is(err, data.ErrResumeNotFound) {
			return nil, apperrors.NotFound("No primary resume found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to get primary resume")
	}
	return asset, nil
}

// Update applies a partial update, demoting siblings when the document is
// promoted to primary.
func (s *ResumeService) Update(ctx context.Context, id string, req model.UpdateResumeRequest) (*model.ResumeAsset, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	asset, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, data.ErrResumeNotFound) {
			return nil, apperrors.NotFound("Resume asset not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to update resume asset")
	}
	return asset, nil
}

// Delete deletes a resume asset by ID.
func (s *ResumeService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to delete resume asset")
	}
	if !deleted {
		return apperrors.NotFound("Resume asset not found")
	}
	return nil
}
