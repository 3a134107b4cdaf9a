package model

import (
	"errors"
	"strings"
)

// AdminRole is the only role the service issues; there is a single admin
// account configured through the environment.
const AdminRole = "admin"

// AdminUser identifies the authenticated admin inside a verified token.
type AdminUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

// LoginResponse is the success body of POST /auth/login.
type LoginResponse struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

// VerifyResponse is the success body of GET /auth/verify.
type VerifyResponse struct {
	Valid bool      `json:"valid"`
	User  AdminUser `json:"user"`
}
