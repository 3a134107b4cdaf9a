package httpx

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data"
)

// Cache key prefixes per content resource. Mutations invalidate the whole
// prefix so list pages and detail views never go stale together.
const (
	cachePrefixProfile      = "content:profile"
	cachePrefixProjects     = "content:projects"
	cachePrefixCertificates = "content:certificates"
	cachePrefixMedia        = "content:media"
	cachePrefixResumes      = "content:resumes"
)

// cacheKey derives the cache key for a public GET request from its path and
// query string.
func cacheKey(prefix string, r *http.Request) string {
	if r.URL.RawQuery == "" {
		return prefix + ":" + r.URL.Path
	}
	return prefix + ":" + r.URL.Path + "?" + r.URL.RawQuery
}

// serveCached serves a public GET endpoint through the content cache. Cache
// failures degrade to a direct load; they are logged, never surfaced.
func serveCached(
	w http.ResponseWriter, r *http.Request,
	cache *data.ContentCache, logger *slog.Logger,
	prefix string, load func() (any, error),
) {
	key := cacheKey(prefix, r)

	if body, err := cache.Get(r.Context(), key); err != nil {
		logger.Warn("content cache get failed", slog.String("key", key), slog.Any("error", err))
	} else if body != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}

	v, err := load()
	if err != nil {
		WriteAppError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := cache.Set(r.Context(), key, buf.Bytes()); err != nil {
		logger.Warn("content cache set failed", slog.String("key", key), slog.Any("error", err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// invalidateCache drops every cached entry under the prefix after a content
// mutation. Best effort.
func invalidateCache(r *http.Request, cache *data.ContentCache, logger *slog.Logger, prefix string) {
	if err := cache.Invalidate(r.Context(), prefix); err != nil {
		logger.Warn("content cache invalidation failed", slog.String("prefix", prefix), slog.Any("error", err))
	}
}
