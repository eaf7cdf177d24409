package media

import "errors"

var (
	// ErrMalformedName indicates a file name has no usable extension.
	ErrMalformedName = errors.New("file name has no extension")

	// ErrHomeDirUnresolved indicates the current user's home directory could not be determined.
	ErrHomeDirUnresolved = errors.New("cannot resolve home directory")
)
