package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/config"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	apperrors "github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and verifies admin bearer tokens. There is a single
// admin account configured through the environment.
type AuthService struct {
	cfg config.AuthConfig
}

// NewAuthService constructs a new AuthService.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{cfg: cfg}
}

// adminClaims is the JWT payload for admin tokens.
type adminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Login checks the configured admin credentials and returns a signed token on
// success. Email and password failures produce the same error so the response
// never reveals which one was wrong.
func (s *AuthService) Login(req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.cfg.AdminEmail)) == 1
	if !emailOK || !s.passwordMatches(req.Password) {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	token, err := s.generateToken()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to sign token")
	}

	return &model.LoginResponse{
		Token: token,
		User:  model.AdminUser{Email: s.cfg.AdminEmail, Role: model.AdminRole},
	}, nil
}

// VerifyToken parses and validates an admin bearer token and returns the
// admin identity carried in it.
func (s *AuthService) VerifyToken(tokenString string) (*model.AdminUser, error) {
	if tokenString == "" {
		return nil, apperrors.Unauthorized("Unauthorized")
	}

	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}
	if claims.Role != model.AdminRole {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	return &model.AdminUser{Email: claims.Email, Role: claims.Role}, nil
}

func (s *AuthService) passwordMatches(password string) bool {
	if s.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	if s.cfg.AdminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
}

func (s *AuthService) generateToken() (string, error) {
	now := time.Now()
	claims := adminClaims{
		Email: s.cfg.AdminEmail,
		Role:  model.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.cfg.AdminEmail,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
