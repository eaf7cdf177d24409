// internal/mover/copy.go
package mover

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyFile copies src to dst, keeping the source permission bits.
// The content is written to a temporary file next to dst and renamed into
// place, so dst is either fully replaced or left as it was.
func CopyFile(src, dst string) (int64, error) {
	// Open source
	srcFile, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("%w: open source: %v", ErrCopyFailed, err)
	}
	defer func() { _ = srcFile.Close() }()

	info, err := srcFile.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: stat source: %v", ErrCopyFailed, err)
	}

	// Temp file in the destination directory so the final rename stays on one filesystem
	dir := filepath.Dir(dst)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("%w: create temp file: %v", ErrCopyFailed, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	size, err := io.Copy(tmp, srcFile)
	if err != nil {
		return 0, fmt.Errorf("%w: copy content: %v", ErrCopyFailed, err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("%w: chmod: %v", ErrCopyFailed, err)
	}

	// Sync to disk
	if err := tmp.Sync(); err != nil {
		return 0, fmt.Errorf("%w: sync: %v", ErrCopyFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("%w: close temp file: %v", ErrCopyFailed, err)
	}

	if err := os.Rename(tmpName, dst); err != nil {
		return 0, fmt.Errorf("%w: rename into place: %v", ErrCopyFailed, err)
	}
	committed = true

	return size, nil
}
