package config

// Storage backend selection values.
const (
	StorageBackendDisk = "disk"
	StorageBackendS3   = "s3"
)

// StorageConfig contains upload storage configuration.
//
// The disk backend writes uploads under Dir and serves them from the
// application's /uploads route. The s3 backend writes to an S3-compatible
// bucket (MinIO works via S3_ENDPOINT) and builds public URLs from
// S3_PUBLIC_BASE_URL.
type StorageConfig struct {
	Backend string `env:"STORAGE_BACKEND" envDefault:"disk"`

	// Disk backend
	Dir string `env:"UPLOAD_DIR" envDefault:"uploads"`

	// MaxUploadBytes caps a single uploaded file.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`

	// S3 backend
	S3Bucket        string `env:"S3_BUCKET"          envDefault:""`
	S3Region        string `env:"S3_REGION"          envDefault:"us-east-1"`
	S3Endpoint      string `env:"S3_ENDPOINT"        envDefault:""`
	S3AccessKey     string `env:"S3_ACCESS_KEY"      envDefault:""`
	S3SecretKey     string `env:"S3_SECRET_KEY"      envDefault:""`
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL" envDefault:""`
}

// Sanitize applies guardrails to storage configuration values.
func (s *StorageConfig) Sanitize() {
	if s.Backend != StorageBackendS3 {
		s.Backend = StorageBackendDisk
	}
	if s.Dir == "" {
		s.Dir = "uploads"
	}
	if s.MaxUploadBytes <= 0 {
		s.MaxUploadBytes = 10 << 20
	}
}
