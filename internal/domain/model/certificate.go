package model

import (
	"errors"
	"strings"
	"time"
)

// Certificate is a professional certificate or credential. Listed newest
// first.
type Certificate struct {
	ID            string    `json:"id"                      db:"id"`
	Title         string    `json:"title"                   db:"title"`
	Issuer        string    `json:"issuer"                  db:"issuer"`
	IssuedDate    *string   `json:"issuedDate,omitempty"    db:"issued_date"`
	CredentialURL *string   `json:"credentialUrl,omitempty" db:"credential_url"`
	ImageURL      *string   `json:"imageUrl,omitempty"      db:"image_url"`
	CreatedAt     time.Time `json:"createdAt"               db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt"               db:"updated_at"`
}

// CreateCertificateRequest contains fields to create a new certificate.
type CreateCertificateRequest struct {
	Title         string  `json:"title"`
	Issuer        string  `json:"issuer"`
	IssuedDate    *string `json:"issuedDate,omitempty"`
	CredentialURL *string `json:"credentialUrl,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
}

func (r *CreateCertificateRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required and cannot be empty")
	}
	if strings.TrimSpace(r.Issuer) == "" {
		return errors.New("issuer is required and cannot be empty")
	}
	return nil
}

// UpdateCertificateRequest supports partial updates of a certificate.
type UpdateCertificateRequest struct {
	Title         *string `json:"title,omitempty"`
	Issuer        *string `json:"issuer,omitempty"`
	IssuedDate    *string `json:"issuedDate,omitempty"`
	CredentialURL *string `json:"credentialUrl,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
}

// HasUpdates reports whether at least one field is set.
func (r *UpdateCertificateRequest) HasUpdates() bool {
	return r.Title != nil || r.Issuer != nil || r.IssuedDate != nil ||
		r.CredentialURL != nil || r.ImageURL != nil
}

func (r *UpdateCertificateRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return errors.New("title cannot be empty")
	}
	if r.Issuer != nil && strings.TrimSpace(*r.Issuer) == "" {
		return errors.New("issuer cannot be empty")
	}
	return nil
}
