package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/config"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/service"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/storage"
)

// ServiceContainer holds the constructed application services.
type ServiceContainer struct {
	Auth         *service.AuthService
	Profile      *service.ProfileService
	Projects     *service.ProjectService
	Certificates *service.CertificateService
	Media        *service.MediaService
	Resumes      *service.ResumeService
	Upload       *service.UploadService

	// Cache is nil when Redis is not configured.
	Cache *data.ContentCache
}

// BuildServices constructs the service layer over the given connections.
func BuildServices(ctx context.Context, cfg *config.AppConfig, db *sql.DB, redisClient redis.UniversalClient) (*ServiceContainer, error) {
	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var cache *data.ContentCache
	if redisClient != nil {
		cache = data.NewContentCache(redisClient, cfg.Cache.ContentTTL)
	}

	return &ServiceContainer{
		Auth:         service.NewAuthService(cfg.Auth),
		Profile:      service.NewProfileService(data.NewProfileRepo(db)),
		Projects:     service.NewProjectService(data.NewProjectRepo(db)),
		Certificates: service.NewCertificateService(data.NewCertificateRepo(db)),
		Media:        service.NewMediaService(data.NewMediaRepo(db)),
		Resumes:      service.NewResumeService(data.NewResumeRepo(db)),
		Upload:       service.NewUploadService(store),
		Cache:        cache,
	}, nil
}

//nolint:ireturn // the backend is selected at runtime from configuration.
func buildStore(ctx context.Context, cfg *config.AppConfig) (storage.Store, error) {
	if cfg.Storage.Backend == config.StorageBackendS3 {
		store, err := storage.NewS3Store(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("init s3 storage: %w", err)
		}
		return store, nil
	}

	store, err := storage.NewDiskStore(cfg.Storage.Dir, cfg.HTTP.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("init disk storage: %w", err)
	}
	return store, nil
}
