package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	apperrors "github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/errors"
)

// ProjectService manages portfolio case studies.
type ProjectService struct {
	repo *data.ProjectRepo
}

// NewProjectService constructs a new ProjectService.
func NewProjectService(repo *data.ProjectRepo) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create creates a project. An absent slug is derived from the title.
func (s *ProjectService) Create(ctx context.Context, req *model.CreateProjectRequest) (*model.Project, error) {
	if req == nil {
		return nil, apperrors.Validation("request body is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(req.Title)
	} else {
		slug = Slugify(slug)
	}
	if slug == "" {
		return nil, apperrors.ValidationField("slug", "slug cannot be derived from the title")
	}

	project, err := s.repo.Create(ctx, req, slug)
	if err != nil {
		return nil, s.mapErr(err, "failed to create project")
	}
	return project, nil
}

// Get retrieves a project by UUID or slug.
func (s *ProjectService) Get(ctx context.Context, idOrSlug string) (*model.Project, error) {
	project, err := s.repo.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, s.mapErr(err, "failed to get project")
	}
	return project, nil
}

// List returns one page of projects plus the total count.
func (s *ProjectService) List(ctx context.Context, q model.PageQuery) (*model.Page[model.Project], error) {
	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to list projects")
	}
	return &model.Page[model.Project]{Items: items, Total: total}, nil
}

// Update applies a partial update. An explicit slug is normalized; the slug
// is never regenerated from a changed title on its own.
func (s *ProjectService) Update(ctx context.Context, id string, req model.UpdateProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if req.Slug != nil {
		slug := Slugify(*req.Slug)
		if slug == "" {
			return nil, apperrors.ValidationField("slug", "slug cannot be empty")
		}
		req.Slug = &slug
	}

	project, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, s.mapErr(err, "failed to update project")
	}
	return project, nil
}

// Delete deletes a project by ID.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to delete project")
	}
	if !deleted {
		return apperrors.NotFound("Project not found")
	}
	return nil
}

func (s *ProjectService) mapErr(err error, internalMsg string) error {
	switch {
	case errors.Is(err, data.ErrProjectNotFound):
		return apperrors.NotFound("Project not found")
	case errors.Is(err, data.ErrProjectSlugExists):
		return apperrors.Conflict("A project with this slug already exists")
	case apperrors.IsValidation(err):
		return err
	default:
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, internalMsg)
	}
}
