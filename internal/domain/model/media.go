package model

import (
	"errors"
	"strings"
	"time"
)

// Media categories accepted by the gallery.
const (
	MediaCategoryProfile    = "profile"
	MediaCategoryGraduation = "graduation"
	MediaCategoryPersonal   = "personal"
)

// MediaAsset is a gallery photo. Listed newest first.
type MediaAsset struct {
	ID          string    `json:"id"                    db:"id"`
	Title       string    `json:"title"                 db:"title"`
	ImageURL    string    `json:"imageUrl"              db:"image_url"`
	Category    string    `json:"category"              db:"category"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt"             db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt"             db:"updated_at"`
}

func validateMediaCategory(category string) error {
	switch category {
	case MediaCategoryProfile, MediaCategoryGraduation, MediaCategoryPersonal:
		return nil
	default:
		return errors.New("category must be one of: profile, graduation, personal")
	}
}

// CreateMediaRequest contains fields to create a new media asset.
type CreateMediaRequest struct {
	Title       string  `json:"title"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateMediaRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required and cannot be empty")
	}
	if strings.TrimSpace(r.ImageURL) == "" {
		return errors.New("imageUrl is required and cannot be empty")
	}
	return validateMediaCategory(r.Category)
}

// UpdateMediaRequest supports partial updates of a media asset.
type UpdateMediaRequest struct {
	Title       *string `json:"title,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
}

// HasUpdates reports whether at least one field is set.
func (r *UpdateMediaRequest) HasUpdates() bool {
	return r.Title != nil || r.ImageURL != nil || r.Category != nil || r.Description != nil
}

func (r *UpdateMediaRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return errors.New("title cannot be empty")
	}
	if r.ImageURL != nil && strings.TrimSpace(*r.ImageURL) == "" {
		return errors.New("imageUrl cannot be empty")
	}
	if r.Category != nil {
		return validateMediaCategory(*r.Category)
	}
	return nil
}
