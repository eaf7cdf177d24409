package media

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// extensions maps a case-folded extension to its category.
// Anything missing from the table is Other.
var extensions = map[string]Category{
	"jpg":  Image,
	"jpeg": Image,
	"png":  Image,
	"webp": Image,
	"gif":  Image,
	"mp4":  Video,
	"mov":  Video,
	"webm": Video,
}

// Extension returns the case-folded substring after the last "." of the
// base name. Names without a dot, or ending in one, return ErrMalformedName.
func Extension(name string) (string, error) {
	base := filepath.Base(name)
	i := strings.LastIndexByte(base, '.')
	if i < 0 || i == len(base)-1 {
		return "", fmt.Errorf("%w: %q", ErrMalformedName, base)
	}
	return cases.Fold().String(base[i+1:]), nil
}

// Classify returns the category for a file name. It only looks at the name.
func Classify(name string) Category {
	ext, err := Extension(name)
	if err != nil {
		return Other
	}
	return extensions[ext]
}
