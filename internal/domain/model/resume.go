package model

import (
	"errors"
	"strings"
	"time"
)

// Resume asset kinds.
const (
	ResumeTypeResume = "resume"
	ResumeTypeCV     = "cv"
)

// ResumeAsset is a downloadable resume or CV. At most one asset carries the
// primary flag; writes that set it demote every sibling in the same
// transaction. Listed primary first, then newest first.
type ResumeAsset struct {
	ID        string    `json:"id"                db:"id"`
	Title     string    `json:"title"             db:"title"`
	Type      string    `json:"type"              db:"type"`
	FileURL   *string   `json:"fileUrl,omitempty" db:"file_url"`
	LinkURL   *string   `json:"linkUrl,omitempty" db:"link_url"`
	IsPrimary bool      `json:"isPrimary"         db:"is_primary"`
	CreatedAt time.Time `json:"createdAt"         db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt"         db:"updated_at"`
}

func validateResumeType(t string) error {
	switch t {
	case ResumeTypeResume, ResumeTypeCV:
		return nil
	default:
		return errors.New("type must be one of: resume, cv")
	}
}

// CreateResumeRequest contains fields to create a new resume asset.
type CreateResumeRequest struct {
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	FileURL   *string `json:"fileUrl,omitempty"`
	LinkURL   *string `json:"linkUrl,omitempty"`
	IsPrimary bool    `json:"isPrimary"`
}

func (r *CreateResumeRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required and cannot be empty")
	}
	return validateResumeType(r.Type)
}

// UpdateResumeRequest supports partial updates of a resume asset.
type UpdateResumeRequest struct {
	Title     *string `json:"title,omitempty"`
	Type      *string `json:"type,omitempty"`
	FileURL   *string `json:"fileUrl,omitempty"`
	LinkURL   *string `json:"linkUrl,omitempty"`
	IsPrimary *bool   `json:"isPrimary,omitempty"`
}

// HasUpdates reports whether at least one field is set.
func (r *UpdateResumeRequest) HasUpdates() bool {
	return r.Title != nil || r.Type != nil || r.FileURL != nil ||
		r.LinkURL != nil || r.IsPrimary != nil
}

func (r *UpdateResumeRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return errors.New("title cannot be empty")
	}
	if r.Type != nil {
		return validateResumeType(*r.Type)
	}
	return nil
}
