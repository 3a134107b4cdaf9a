package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_AppliesGuardrails(t *testing.T) {
	cfg := AppConfig{}
	cfg.Auth.AdminEmail = "  admin@example.com  "
	cfg.Auth.TokenTTL = -time.Hour
	cfg.HTTP.MaxBodyBytes = 0
	cfg.Storage.Backend = "ftp"
	cfg.Storage.MaxUploadBytes = -1

	cfg.Sanitize()

	assert.Equal(t, "admin@example.com", cfg.Auth.AdminEmail)
	assert.Equal(t, 8*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, int64(10<<20), cfg.HTTP.MaxBodyBytes)
	assert.Equal(t, StorageBackendDisk, cfg.Storage.Backend)
	assert.Equal(t, "uploads", cfg.Storage.Dir)
	assert.Equal(t, int64(10<<20), cfg.Storage.MaxUploadBytes)
}

func TestSanitize_KeepsValidValues(t *testing.T) {
	cfg := AppConfig{}
	cfg.Auth.TokenTTL = time.Hour
	cfg.HTTP.MaxBodyBytes = 1024
	cfg.Storage.Backend = StorageBackendS3
	cfg.Storage.Dir = "/var/uploads"
	cfg.Storage.MaxUploadBytes = 2048

	cfg.Sanitize()

	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, int64(1024), cfg.HTTP.MaxBodyBytes)
	assert.Equal(t, StorageBackendS3, cfg.Storage.Backend)
	assert.Equal(t, "/var/uploads", cfg.Storage.Dir)
	assert.Equal(t, int64(2048), cfg.Storage.MaxUploadBytes)
}

func TestDetectDevMode_NodeEnvFallback(t *testing.T) {
	tests := []struct {
		name    string
		dev     bool
		nodeEnv string
		want    bool
	}{
		{"explicit dev flag wins", true, "production", true},
		{"node env development", false, "development", true},
		{"node env dev", false, "dev", true},
		{"node env uppercase", false, "DEVELOPMENT", true},
		{"node env production", false, "production", false},
		{"unset", false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NODE_ENV", tt.nodeEnv)

			cfg := AppConfig{IsDev: tt.dev}
			cfg.Sanitize()
			assert.Equal(t, tt.want, cfg.IsDev)
		})
	}
}
