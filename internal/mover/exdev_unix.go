//go:build unix

package mover

import (
	"errors"
	"syscall"
)

// isEXDEV also matches EXDEV wrapped in *os.LinkError.
func isEXDEV(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
