package mover

import (
	"fmt"
	"os"
	"path/filepath"
)

// ValidateSourceDir checks that path names an existing directory and
// returns it cleaned.
func ValidateSourceDir(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	return filepath.Clean(path), nil
}
