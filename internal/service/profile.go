package service

import (
	"context"
	"errors"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	apperrors "github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/errors"
)

// ProfileService manages the singleton owner profile.
type ProfileService struct {
	repo *data.ProfileRepo
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(repo *data.ProfileRepo) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the owner profile. A missing profile is the first-write state,
// not an error: callers receive a nil profile, which the read endpoint
// renders as a JSON null.
func (s *ProfileService) Get(ctx context.Context) (*model.Profile, error) {
	profile, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, data.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to get profile")
	}
	return profile, nil
}

// Update applies a partial update to the profile, creating the row on first
// write.
func (s *ProfileService) Update(ctx context.Context, req model.UpdateProfileRequest) (*model.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	profile, err := s.repo.Upsert(ctx, req)
	if err != nil {
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to update profile")
	}
	return profile, nil
}
