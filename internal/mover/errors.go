// internal/mover/errors.go
package mover

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath indicates the source path is missing or not a directory.
	ErrInvalidPath = errors.New("not a directory")

	// ErrDirectoryRead indicates the source directory could not be listed.
	ErrDirectoryRead = errors.New("failed to read directory")

	// ErrMoveFailed indicates a single file could not be moved.
	ErrMoveFailed = errors.New("failed to move file")

	// ErrCopyFailed indicates the copy half of a cross-device move failed.
	ErrCopyFailed = errors.New("failed to copy file")

	// ErrMovesFailed indicates a run finished with at least one failed file.
	ErrMovesFailed = errors.New("some files could not be moved")
)

// MoveError records why one file could not be moved.
// errors.Is(err, ErrMoveFailed) holds for every MoveError.
type MoveError struct {
	Src string
	Dst string
	Err error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s -> %s: %v", e.Src, e.Dst, e.Err)
}

func (e *MoveError) Unwrap() []error { return []error{ErrMoveFailed, e.Err} }

// CrossDeviceError marks a rename that failed with EXDEV.
type CrossDeviceError struct {
	Src string
	Dst string
	Err error
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("cross-device rename %s -> %s: %v", e.Src, e.Dst, e.Err)
}

func (e *CrossDeviceError) Unwrap() error { return e.Err }

// IsCrossDevice reports whether err is a CrossDeviceError.
func IsCrossDevice(err error) bool {
	var e *CrossDeviceError
	return errors.As(err, &e)
}
