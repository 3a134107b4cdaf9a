package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/config"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	apperrors "github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/errors"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AdminEmail:    "admin@example.com",
		AdminPassword: "hunter2",
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
	}
}

func requireAppErrorCode(t *testing.T, err error, code apperrors.ErrorCode) *apperrors.AppError {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
	return appErr
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(testAuthConfig())

	resp, err := svc.Login(model.LoginRequest{Email: "admin@example.com", Password: "hunter2"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@example.com", resp.User.Email)
	assert.Equal(t, model.AdminRole, resp.User.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(testAuthConfig())

	_, err := svc.Login(model.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	appErr := requireAppErrorCode(t, err, apperrors.ErrCodeUnauthorized)
	assert.Equal(t, "Invalid credentials", appErr.Message)
}

func TestAuthService_Login_WrongEmailSameMessage(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(testAuthConfig())

	_, err := svc.Login(model.LoginRequest{Email: "other@example.com", Password: "hunter2"})
	appErr := requireAppErrorCode(t, err, apperrors.ErrCodeUnauthorized)
	// Identical message for wrong email and wrong password.
	assert.Equal(t, "Invalid credentials", appErr.Message)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(testAuthConfig())

	_, err := svc.Login(model.LoginRequest{Email: "", Password: ""})
	requireAppErrorCode(t, err, apperrors.ErrCodeValidation)
}

func TestAuthService_Login_BcryptHashTakesPrecedence(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := testAuthConfig()
	cfg.AdminPasswordHash = string(hash)
	cfg.AdminPassword = "ignored-when-hash-set"
	svc := NewAuthService(cfg)

	_, err = svc.Login(model.LoginRequest{Email: "admin@example.com", Password: "s3cret"})
	require.NoError(t, err)

	_, err = svc.Login(model.LoginRequest{Email: "admin@example.com", Password: "ignored-when-hash-set"})
	requireAppErrorCode(t, err, apperrors.ErrCodeUnauthorized)
}

func TestAuthService_Login_NoPasswordConfiguredAlwaysFails(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.AdminPassword = ""
	svc := NewAuthService(cfg)

	_, err := svc.Login(model.LoginRequest{Email: "admin@example.com", Password: ""})
	requireAppErrorCode(t, err, apperrors.ErrCodeUnauthorized)
}

func TestAuthService_VerifyToken_RoundTrip(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(testAuthConfig())

	resp, err := svc.Login(model.LoginRequest{Email: "admin@example.com", Password: "hunter2"})
	require.NoError(t, err)

	user, err := svc.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, model.AdminRole, user.Role)
}

func TestAuthService_VerifyToken_RepeatedVerificationIsStable(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(testAuthConfig())

	resp, err := svc.Login(model.LoginRequest{Email: "admin@example.com", Password: "hunter2"})
	require.NoError(t, err)

	// Verification is read-only: the same token checks out any number of
	// times with the same result.
	first, err := svc.VerifyToken(resp.Token)
	require.NoError(t, err)
	second, err := svc.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAuthService_VerifyToken_EmptyToken(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(testAuthConfig())

	_, err := svc.VerifyToken("")
	appErr := requireAppErrorCode(t, err, apperrors.ErrCodeUnauthorized)
	assert.Equal(t, "Unauthorized", appErr.Message)
}

func TestAuthService_VerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewAuthService(testAuthConfig())
	resp, err := issuer.Login(model.LoginRequest{Email: "admin@example.com", Password: "hunter2"})
	require.NoError(t, err)

	cfg := testAuthConfig()
	cfg.JWTSecret = "other-secret"
	verifier := NewAuthService(cfg)

	_, err = verifier.VerifyToken(resp.Token)
	appErr := requireAppErrorCode(t, err, apperrors.ErrCodeUnauthorized)
	assert.Equal(t, "Invalid or expired token", appErr.Message)
}

func TestAuthService_VerifyToken_ExpiredToken(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.TokenTTL = -time.Minute
	issuer := NewAuthService(cfg)

	resp, err := issuer.Login(model.LoginRequest{Email: "admin@example.com", Password: "hunter2"})
	require.NoError(t, err)

	_, err = issuer.VerifyToken(resp.Token)
	appErr := requireAppErrorCode(t, err, apperrors.ErrCodeUnauthorized)
	assert.Equal(t, "Invalid or expired token", appErr.Message)
}

func TestAuthService_VerifyToken_Garbage(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(testAuthConfig())

	_, err := svc.VerifyToken("not.a.jwt")
	requireAppErrorCode(t, err, apperrors.ErrCodeUnauthorized)
}
