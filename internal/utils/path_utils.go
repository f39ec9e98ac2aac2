package utils

import (
	"path/filepath"

	"github.com/funvibe/typeassist/internal/config"
)

// SourceDir returns the directory that settings lookup starts from.
// If the path points to a source file, returns the file's directory.
// If the path points to a directory (no extension), returns the path itself.
func SourceDir(path string) string {
	if config.HasSourceExt(path) {
		return filepath.Dir(path)
	}
	return path
}

// DisplayName derives a short name for a source file from its path.
// It takes the base filename and removes any recognized source extension.
func DisplayName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return config.TrimSourceExt(filepath.Base(path))
}

// RelativeTo returns path relative to baseDir when path lies below it.
// Otherwise returns the path as is.
func RelativeTo(baseDir, path string) string {
	if baseDir == "" || baseDir == "." {
		return path
	}
	rel, err := filepath.Rel(baseDir, path)
	if err != nil || rel == ".." || filepath.IsAbs(rel) || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator) {
		return path
	}
	return rel
}
