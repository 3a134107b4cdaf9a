// Package storage persists uploaded files and yields public URLs for them.
// Two backends exist: local disk (served by the app's /uploads route) and an
// S3-compatible bucket.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store saves uploaded files under randomized names.
type Store interface {
	// Save writes the file content and returns the stored file name and the
	// public URL it will be reachable at.
	Save(ctx context.Context, originalName string, contentType string, r io.Reader) (fileName string, fileURL string, err error)
}

// storageKey builds a collision-free stored name that keeps the original
// extension so browsers and CDNs infer the content type.
func storageKey(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	// Extensions come from user input; drop anything that does not look
	// like a plain file extension.
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\ ") {
		ext = ""
	}
	return uuid.NewString() + ext
}
