package model

import (
	"errors"
	"time"
)

// Profile is the single owner profile rendered on the public site. The table
// holds at most one row; PUT /profile creates it on first write.
type Profile struct {
	ID              string    `json:"id"                     db:"id"`
	FullName        string    `json:"fullName"               db:"full_name"`
	Title           string    `json:"title"                  db:"title"`
	Headline        string    `json:"headline"               db:"headline"`
	Bio             string    `json:"bio"                    db:"bio"`
	Email           string    `json:"email"                  db:"email"`
	LinkedInURL     *string   `json:"linkedInUrl,omitempty"  db:"linkedin_url"`
	GithubURL       *string   `json:"githubUrl,omitempty"    db:"github_url"`
	Location        *string   `json:"location,omitempty"     db:"location"`
	HeroImageURL    *string   `json:"heroImageUrl,omitempty" db:"hero_image_url"`
	CurrentRole     *string   `json:"currentRole,omitempty"  db:"current_role"`
	FirstDegree     string    `json:"firstDegree"            db:"first_degree"`
	FirstDegreeDate string    `json:"firstDegreeDate"        db:"first_degree_date"`
	SecondDegree    string    `json:"secondDegree"           db:"second_degree"`
	SecondDegreeEta string    `json:"secondDegreeEta"        db:"second_degree_eta"`
	CreatedAt       time.Time `json:"createdAt"              db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt"              db:"updated_at"`
}

// UpdateProfileRequest carries the writable profile fields. All fields are
// optional; absent fields are left untouched. Server-managed fields (id,
// timestamps) are deliberately not representable here.
type UpdateProfileRequest struct {
	FullName        *string `json:"fullName,omitempty"`
	Title           *string `json:"title,omitempty"`
	Headline        *string `json:"headline,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	Email           *string `json:"email,omitempty"`
	LinkedInURL     *string `json:"linkedInUrl,omitempty"`
	GithubURL       *string `json:"githubUrl,omitempty"`
	Location        *string `json:"location,omitempty"`
	HeroImageURL    *string `json:"heroImageUrl,omitempty"`
	CurrentRole     *string `json:"currentRole,omitempty"`
	FirstDegree     *string `json:"firstDegree,omitempty"`
	FirstDegreeDate *string `json:"firstDegreeDate,omitempty"`
	SecondDegree    *string `json:"secondDegree,omitempty"`
	SecondDegreeEta *string `json:"secondDegreeEta,omitempty"`
}

// HasUpdates reports whether at least one field is set.
func (r *UpdateProfileRequest) HasUpdates() bool {
	return r.FullName != nil || r.Title != nil || r.Headline != nil ||
		r.Bio != nil || r.Email != nil || r.LinkedInURL != nil ||
		r.GithubURL != nil || r.Location != nil || r.HeroImageURL != nil ||
		r.CurrentRole != nil || r.FirstDegree != nil || r.FirstDegreeDate != nil ||
		r.SecondDegree != nil || r.SecondDegreeEta != nil
}

func (r *UpdateProfileRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.FullName != nil && *r.FullName == "" {
		return errors.New("fullName cannot be empty")
	}
	if r.Email != nil && *r.Email == "" {
		return errors.New("email cannot be empty")
	}
	return nil
}
