package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectSlugExists   = errors.New("project slug already exists")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrMediaNotFound       = errors.New("media asset not found")
	ErrResumeNotFound      = errors.New("resume asset not found")
)
