//revive:disable-next-line:var-naming // legacy package name used across the project
package model

import "strings"

const (
	// DefaultPageSize is used when a list request omits pageSize.
	DefaultPageSize = 10
	// MaxPageSize is the hard server-side cap on pageSize.
	MaxPageSize = 50
)

// PageQuery holds the pagination and search parameters shared by every list
// endpoint. Search is a case-insensitive substring match over the entity's
// designated text fields.
type PageQuery struct {
	Page     int
	PageSize int
	Search   string
}

// Normalize clamps the query to valid bounds: page ≥ 1, 1 ≤ pageSize ≤ 50,
// trimmed search text.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

// Offset returns the SQL offset for the query.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// HasSearch reports whether a non-empty search term is present.
func (q PageQuery) HasSearch() bool {
	return q.Search != ""
}

// Page is the envelope returned by every list endpoint: one page of items
// plus the total row count for pagination math.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
