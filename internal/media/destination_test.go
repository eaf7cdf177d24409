package media

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	home := filepath.FromSlash("/home/u")

	dir, ok := Resolve(Image, home)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(home, "TestPics"), dir)

	dir, ok = Resolve(Video, home)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(home, "TestVids"), dir)

	dir, ok = Resolve(Other, home)
	assert.False(t, ok)
	assert.Empty(t, dir)

	// Unknown values are total too
	_, ok = Resolve(Category(99), home)
	assert.False(t, ok)
}

func TestDestinations_Resolve_Custom(t *testing.T) {
	abs := t.TempDir()
	d := Destinations{Images: "Pictures/Sorted", Videos: abs}

	dir, ok := d.Resolve(Image, "/home/u")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/home/u", "Pictures", "Sorted"), dir)

	dir, ok = d.Resolve(Video, "/home/u")
	require.True(t, ok)
	assert.Equal(t, abs, dir)
}

func TestDestinations_Resolve_EmptyMeansNone(t *testing.T) {
	d := Destinations{Images: "TestPics"}

	_, ok := d.Resolve(Video, "/home/u")
	assert.False(t, ok)
}

func TestHomeDir(t *testing.T) {
	orig := userHomeDir
	t.Cleanup(func() { userHomeDir = orig })

	userHomeDir = func() (string, error) { return "/home/u", nil }
	home, err := HomeDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/u", home)

	userHomeDir = func() (string, error) { return "", errors.New("$HOME is not defined") }
	_, err = HomeDir()
	assert.ErrorIs(t, err, ErrHomeDirUnresolved)

	userHomeDir = func() (string, error) { return "", nil }
	_, err = HomeDir()
	assert.ErrorIs(t, err, ErrHomeDirUnresolved)
}
