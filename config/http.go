package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":5000"`

	// BaseURL is the base URL of the application (e.g., "https://api.example.com").
	// Used for generating absolute upload URLs.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:5000"`

	// CORSOrigins is a comma-separated allow-list of origins. Entries may use
	// a "*.domain" wildcard to allow all subdomains, or "*" to allow any origin.
	CORSOrigins string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`

	// MaxBodyBytes caps JSON request bodies.
	MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" envDefault:"10485760"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.MaxBodyBytes <= 0 {
		h.MaxBodyBytes = 10 << 20
	}
}
