package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxProjectTitleLen = 200

// Project is a portfolio case study. Default list order is featured first,
// then explicit display order, then newest first.
type Project struct {
	ID              string    `json:"id"                        db:"id"`
	Title           string    `json:"title"                     db:"title"`
	Slug            string    `json:"slug"                      db:"slug"`
	Summary         string    `json:"summary"                   db:"summary"`
	Problem         string    `json:"problem"                   db:"problem"`
	ActionTaken     string    `json:"actionTaken"               db:"action_taken"`
	Result          string    `json:"result"                    db:"result"`
	TechStack       []string  `json:"techStack"                 db:"tech_stack"`
	GalleryImages   []string  `json:"galleryImages,omitempty"   db:"gallery_images"`
	HostingFrontend *string   `json:"hostingFrontend,omitempty" db:"hosting_frontend"`
	HostingBackend  *string   `json:"hostingBackend,omitempty"  db:"hosting_backend"`
	DatabaseStorage *string   `json:"databaseStorage,omitempty" db:"database_storage"`
	ImageURL        string    `json:"imageUrl"                  db:"image_url"`
	LiveURL         string    `json:"liveUrl"                   db:"live_url"`
	RepoURL         *string   `json:"repoUrl,omitempty"         db:"repo_url"`
	Featured        bool      `json:"featured"                  db:"featured"`
	DisplayOrder    int       `json:"displayOrder"              db:"display_order"`
	CreatedAt       time.Time `json:"createdAt"                 db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt"                 db:"updated_at"`
}

// CreateProjectRequest contains fields to create a new project. Slug is
// optional; when absent it is derived from the title.
type CreateProjectRequest struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug,omitempty"`
	Summary         string   `json:"summary"`
	Problem         string   `json:"problem"`
	ActionTaken     string   `json:"actionTaken"`
	Result          string   `json:"result"`
	TechStack       []string `json:"techStack"`
	GalleryImages   []string `json:"galleryImages,omitempty"`
	HostingFrontend *string  `json:"hostingFrontend,omitempty"`
	HostingBackend  *string  `json:"hostingBackend,omitempty"`
	DatabaseStorage *string  `json:"databaseStorage,omitempty"`
	ImageURL        string   `json:"imageUrl"`
	LiveURL         string   `json:"liveUrl"`
	RepoURL         *string  `json:"repoUrl,omitempty"`
	Featured        *bool    `json:"featured,omitempty"`
	DisplayOrder    *int     `json:"displayOrder,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxProjectTitleLen {
		return errors.New("title cannot exceed 200 characters")
	}
	if strings.TrimSpace(r.Summary) == "" {
		return errors.New("summary is required and cannot be empty")
	}
	for _, item := range r.TechStack {
		if strings.TrimSpace(item) == "" {
			return errors.New("techStack cannot contain empty entries")
		}
	}
	return nil
}

// UpdateProjectRequest supports partial updates of a project. The slug only
// changes when an explicit Slug is provided; a title change alone never
// rewrites it.
type UpdateProjectRequest struct {
	Title           *string   `json:"title,omitempty"`
	Slug            *string   `json:"slug,omitempty"`
	Summary         *string   `json:"summary,omitempty"`
	Problem         *string   `json:"problem,omitempty"`
	ActionTaken     *string   `json:"actionTaken,omitempty"`
	Result          *string   `json:"result,omitempty"`
	TechStack       *[]string `json:"techStack,omitempty"`
	GalleryImages   *[]string `json:"galleryImages,omitempty"`
	HostingFrontend *string   `json:"hostingFrontend,omitempty"`
	HostingBackend  *string   `json:"hostingBackend,omitempty"`
	DatabaseStorage *string   `json:"databaseStorage,omitempty"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	LiveURL         *string   `json:"liveUrl,omitempty"`
	RepoURL         *string   `json:"repoUrl,omitempty"`
	Featured        *bool     `json:"featured,omitempty"`
	DisplayOrder    *int      `json:"displayOrder,omitempty"`
}

// HasUpdates reports whether at least one field is set.
func (r *UpdateProjectRequest) HasUpdates() bool {
	return r.Title != nil || r.Slug != nil || r.Summary != nil ||
		r.Problem != nil || r.ActionTaken != nil || r.Result != nil ||
		r.TechStack != nil || r.GalleryImages != nil || r.HostingFrontend != nil ||
		r.HostingBackend != nil || r.DatabaseStorage != nil || r.ImageURL != nil ||
		r.LiveURL != nil || r.RepoURL != nil || r.Featured != nil ||
		r.DisplayOrder != nil
}

func (r *UpdateProjectRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return errors.New("title cannot be empty")
		}
		if utf8.RuneCountInString(title) > maxProjectTitleLen {
			return errors.New("title cannot exceed 200 characters")
		}
	}
	if r.TechStack != nil {
		for _, item := range *r.TechStack {
			if strings.TrimSpace(item) == "" {
				return errors.New("techStack cannot contain empty entries")
			}
		}
	}
	return nil
}
