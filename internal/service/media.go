package service

import (
	"context"
	"errors"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	apperrors "github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/errors"
)

// MediaService manages the photo gallery.
type MediaService struct {
	repo *data.MediaRepo
}

// NewMediaService constructs a new MediaService.
func NewMediaService(repo *data.MediaRepo) *MediaService {
	return &MediaService{repo: repo}
}

// Create creates a media asset.
func (s *MediaService) Create(ctx context.Context, req *model.CreateMediaRequest) (*model.MediaAsset, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	asset, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create media asset")
	}
	return asset, nil
}

// List returns one page of media assets plus the total count.
func (s *MediaService) List(ctx context.Context, q model.PageQuery) (*model.Page[model.MediaAsset], error) {
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list media assets")
	}
	return &model.Page[model.MediaAsset]{Items: items, Total: total}, nil
}

// Update applies a partial update to a media asset.
func (s *MediaService) Update(ctx context.Context, id string, req model.UpdateMediaRequest) (*model.MediaAsset, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	asset, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, data.ErrMediaNotFound) {
			return nil, apperrors.NotFound("Media asset not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to update media asset")
	}
	return asset, nil
}

// Delete deletes a media asset by ID.
func (s *MediaService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to delete media asset")
	}
	if !deleted {
		return apperrors.NotFound("Media asset not found")
	}
	return nil
}
