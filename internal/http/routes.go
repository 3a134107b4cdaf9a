package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	Profile      *service.ProfileService
	Projects     *service.ProjectService
	Certificates *service.CertificateService
	Media        *service.MediaService
	Resumes      *service.ResumeService
	Upload       *service.UploadService

	// Cache is the optional public content cache; nil disables caching.
	Cache *data.ContentCache

	// UploadDir is served at /uploads when the disk storage backend is active.
	// Empty disables the static route.
	UploadDir string

	CORSOrigins  string
	MaxBodyBytes int64
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Auth}
	profileHandlers := &ProfileHandlers{Svc: services.Profile, Cache: services.Cache, Logger: logger}
	projectHandlers := &ProjectHandlers{Svc: services.Projects, Cache: services.Cache, Logger: logger}
	certHandlers := &CertificateHandlers{Svc: services.Certificates, Cache: services.Cache, Logger: logger}
	mediaHandlers := &MediaHandlers{Svc: services.Media, Cache: services.Cache, Logger: logger}
	resumeHandlers := &ResumeHandlers{Svc: services.Resumes, Cache: services.Cache, Logger: logger}
	uploadHandlers := &UploadHandlers{Svc: services.Upload, MaxBytes: services.MaxBodyBytes}

	requireAuth := RequireAuth(services.Auth)

	mux.Handle("GET /api/health", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /api/health", http.HandlerFunc(healthHandler))

	mux.Handle("POST /api/auth/login", http.HandlerFunc(authHandlers.Login))
	mux.Handle("GET /api/auth/verify", requireAuth(http.HandlerFunc(authHandlers.Verify)))

	mux.Handle("GET /api/profile", http.HandlerFunc(profileHandlers.Get))
	mux.Handle("PUT /api/profile", requireAuth(http.HandlerFunc(profileHandlers.Update)))

	mux.Handle("GET /api/projects", http.HandlerFunc(projectHandlers.List))
	mux.Handle("GET /api/projects/{idOrSlug}", http.HandlerFunc(projectHandlers.Get))
	mux.Handle("POST /api/projects", requireAuth(http.HandlerFunc(projectHandlers.Create)))
	mux.Handle("PUT /api/projects/{id}", requireAuth(http.HandlerFunc(projectHandlers.Update)))
	mux.Handle("DELETE /api/projects/{id}", requireAuth(http.HandlerFunc(projectHandlers.Delete)))

	mux.Handle("GET /api/certificates", http.HandlerFunc(certHandlers.List))
	mux.Handle("POST /api/certificates", requireAuth(http.HandlerFunc(certHandlers.Create)))
	mux.Handle("PUT /api/certificates/{id}", requireAuth(http.HandlerFunc(certHandlers.Update)))
	mux.Handle("DELETE /api/certificates/{id}", requireAuth(http.HandlerFunc(certHandlers.Delete)))

	mux.Handle("GET /api/media", http.HandlerFunc(mediaHandlers.List))
	mux.Handle("POST /api/media", requireAuth(http.HandlerFunc(mediaHandlers.Create)))
	mux.Handle("PUT /api/media/{id}", requireAuth(http.HandlerFunc(mediaHandlers.Update)))
	mux.Handle("DELETE /api/media/{id}", requireAuth(http.HandlerFunc(mediaHandlers.Delete)))

	mux.Handle("GET /api/resumes", http.HandlerFunc(resumeHandlers.List))
	mux.Handle("GET /api/resumes/primary", http.HandlerFunc(resumeHandlers.GetPrimary))
	mux.Handle("POST /api/resumes", requireAuth(http.HandlerFunc(resumeHandlers.Create)))
	mux.Handle("PUT /api/resumes/{id}", requireAuth(http.HandlerFunc(resumeHandlers.Update)))
	mux.Handle("DELETE /api/resumes/{id}", requireAuth(http.HandlerFunc(resumeHandlers.Delete)))

	mux.Handle("POST /api/upload", requireAuth(http.HandlerFunc(uploadHandlers.Create)))

	// Unknown API paths get a JSON 404 instead of the default text body.
	mux.Handle("/api/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("Endpoint not found"),
		})
	}))

	if services.UploadDir != "" {
		fs := http.FileServer(http.Dir(services.UploadDir))
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", fs))
	}

	var handler http.Handler = mux
	handler = maxBody(services.MaxBodyBytes)(handler)
	handler = CORS(services.CORSOrigins)(handler)
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

// maxBody caps request bodies for every route except uploads, which apply
// their own limit.
func maxBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if n <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && !strings.HasPrefix(r.URL.Path, "/api/upload") {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
