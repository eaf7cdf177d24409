package media

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default destination directory names, relative to the home directory.
const (
	DefaultImageDir = "TestPics"
	DefaultVideoDir = "TestVids"
)

// userHomeDir is swapped in tests.
var userHomeDir = os.UserHomeDir

// Destinations holds the directory used for each sortable category.
// Relative names are joined to the home directory; absolute names are used as-is.
type Destinations struct {
	Images string
	Videos string
}

// DefaultDestinations returns ~/TestPics and ~/TestVids.
func DefaultDestinations() Destinations {
	return Destinations{Images: DefaultImageDir, Videos: DefaultVideoDir}
}

// Resolve returns the destination directory for cat under homeDir.
// The second result is false for categories that stay where they are.
func (d Destinations) Resolve(cat Category, homeDir string) (string, bool) {
	var dir string
	switch cat {
	case Image:
		dir = d.Images
	case Video:
		dir = d.Videos
	default:
		return "", false
	}
	if dir == "" {
		return "", false
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir), true
	}
	return filepath.Join(homeDir, dir), true
}

// Resolve uses the default destinations.
func Resolve(cat Category, homeDir string) (string, bool) {
	return DefaultDestinations().Resolve(cat, homeDir)
}

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHomeDirUnresolved, err)
	}
	if home == "" {
		return "", ErrHomeDirUnresolved
	}
	return home, nil
}
