package config

import (
	"strings"
	"time"
)

// AuthConfig contains admin credential and token configuration.
//
// The service has a single admin account configured entirely through the
// environment. Either ADMIN_PASSWORD (plain comparison) or
// ADMIN_PASSWORD_HASH (bcrypt) must be set; the hash takes precedence when
// both are present.
type AuthConfig struct {
	// AdminEmail is the only email accepted by the login endpoint.
	AdminEmail string `env:"ADMIN_EMAIL" envDefault:""`

	// AdminPassword is the admin password compared in constant time.
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:""`

	// AdminPasswordHash is an optional bcrypt hash of the admin password.
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH" envDefault:""`

	// JWTSecret signs admin bearer tokens (HS256). Required.
	JWTSecret string `env:"JWT_SECRET" envDefault:""`

	// TokenTTL is the fixed lifetime of issued admin tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"8h"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	a.AdminEmail = strings.TrimSpace(a.AdminEmail)
	if a.TokenTTL <= 0 {
		a.TokenTTL = 8 * time.Hour
	}
}
