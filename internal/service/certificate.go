package service

import (
	"context"
	"errors"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	apperrors "github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/errors"
)

// CertificateService manages professional certificates.
type CertificateService struct {
	repo *data.CertificateRepo
}

// NewCertificateService constructs a new CertificateService.
func NewCertificateService(repo *data.CertificateRepo) *CertificateService {
	return &CertificateService{repo: repo}
}

// Create creates a certificate.
func (s *CertificateService) Create(ctx context.Context, req *model.CreateCertificateRequest) (*model.Certificate, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	cert, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create certificate")
	}
	return cert, nil
}

// List returns one page of certificates plus the total count.
func (s *CertificateService) List(ctx context.Context, q model.PageQuery) (*model.Page[model.Certificate], error) {
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list certificates")
	}
	return &model.Page[model.Certificate]{Items: items, Total: total}, nil
}

// Update applies a partial update to a certificate.
func (s *CertificateService) Update(ctx context.Context, id string, req model.UpdateCertificateRequest) (*model.Certificate, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	cert, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, data.ErrCertificateNotFound) {
			return nil, apperrors.NotFound("Certificate not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to update certificate")
	}
	return cert, nil
}

// Delete deletes a certificate by ID.
func (s *CertificateService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to delete certificate")
	}
	if !deleted {
		return apperrors.NotFound("Certificate not found")
	}
	return nil
}
