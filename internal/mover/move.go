package mover

import (
	"fmt"
)

// Rename renames src to dst and marks EXDEV failures as CrossDeviceError.
func Rename(fsys FileSystem, src, dst string) error {
	if err := fsys.Rename(src, dst); err != nil {
		if isEXDEV(err) {
			return &CrossDeviceError{Src: src, Dst: dst, Err: err}
		}
		return err
	}
	return nil
}

// Move moves src to dst. A rename is tried first; when src and dst are on
// different filesystems the file is copied and the source removed.
// Returns the size of the moved file.
//
// A failed copy leaves dst untouched. If the source cannot be removed after
// a successful copy, both files remain and the error is returned.
func Move(fsys FileSystem, src, dst string) (int64, error) {
	info, err := fsys.Stat(src)
	if err != nil {
		return 0, err
	}

	err = Rename(fsys, src, dst)
	if err == nil {
		return info.Size(), nil
	}
	if !IsCrossDevice(err) {
		return 0, err
	}

	size, err := fsys.CopyFile(src, dst)
	if err != nil {
		return 0, err
	}
	if err := fsys.Remove(src); err != nil {
		return 0, fmt.Errorf("remove source after copy to %s: %w", dst, err)
	}
	return size, nil
}
