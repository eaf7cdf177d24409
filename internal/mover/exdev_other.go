//go:build !unix

package mover

// Cross-device renames are reported as ordinary errors on non-unix platforms.
func isEXDEV(error) bool { return false }
