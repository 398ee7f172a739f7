// internal/adapters/out/gcs/helper_repository_gcs.go
package gcs

import (
	"path"
	"strings"
)

// sanitizePathSegment normalizes a path segment for GCS object paths.
//   - removes separators
//   - trims dots/spaces
func sanitizePathSegment(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.Trim(s, ". ")
	return s
}

// ensureExtensionByMIME appends an extension based on MIME when fileName has no extension.
func ensureExtensionByMIME(fileName string, mime string) string {
	lower := strings.ToLower(strings.TrimSpace(fileName))

	if strings.Contains(path.Base(lower), ".") {
		return fileName
	}

	ext := ""
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	case "image/gif":
		ext = ".gif"
	}
	return fileName + ext
}

func bucketOrDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return strings.TrimSpace(def)
}
