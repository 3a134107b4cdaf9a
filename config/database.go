package config

import "time"

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"portfolio"`
	Password string `env:"PASSWORD" envDefault:"portfolio"`
	Name     string `env:"NAME"     envDefault:"portfolio"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// RedisConfig contains Redis configuration for the content cache.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// Enabled reports whether a Redis address is configured. The content cache
// is optional; an empty address disables it entirely.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// CacheConfig contains content cache configuration.
type CacheConfig struct {
	// ContentTTL is the TTL for cached public read responses.
	ContentTTL time.Duration `env:"CACHE_CONTENT_TTL" envDefault:"5m"`
}
