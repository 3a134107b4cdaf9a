package httpx

import (
	"net/http"
	"strconv"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
)

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// ParsePageQuery parses page, pageSize and search query params and clamps
// them to sane bounds.
func ParsePageQuery(r *http.Request) model.PageQuery {
	q := model.PageQuery{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "pageSize", model.DefaultPageSize),
		Search:   r.URL.Query().Get("search"),
	}
	return q.Normalize()
}
