package utils

import (
	"path"
	"strings"
)

const uploadsPrefix = "uploads/"

// CleanStorageKey turns a stored content path like /uploads/videos/a.mp4 into
// a relative key (videos/a.mp4). Dot segments are resolved against a virtual
// root so the result can never climb above it.
func CleanStorageKey(key string) string {
	cleaned := path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	cleaned = strings.TrimPrefix(cleaned, uploadsPrefix)
	if cleaned == "uploads" {
		return ""
	}
	return cleaned
}
