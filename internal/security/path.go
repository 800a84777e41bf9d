package security

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var (
	errEmptyPath    = errors.New("empty path")
	errNotAbsolute  = errors.New("path must be absolute")
	errTraversal    = errors.New("parent directory traversal is not allowed")
	errOutsideHome  = errors.New("file operations are restricted to the home directory")
)

// SanitizePath validates a caller-supplied path and returns the canonical
// form to use. Any ".." component is rejected outright, even when the
// resolved path would stay inside the allowed root; the check is syntactic
// on purpose. When HOME is unset the containment check is skipped (see the
// package doc).
func SanitizePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errEmptyPath
	}

	if !filepath.IsAbs(path) {
		return "", errNotAbsolute
	}

	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return "", errTraversal
		}
	}

	clean := filepath.Clean(path)

	if home := os.Getenv("HOME"); home != "" {
		home = filepath.Clean(home)
		if clean != home && !strings.HasPrefix(clean, home+string(os.PathSeparator)) {
			return "", errOutsideHome
		}
	}

	return clean, nil
}
