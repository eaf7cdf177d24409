package mover

import (
	"io/fs"
	"os"
)

//go:generate mockgen -source=fs.go -destination=mocks/mock_fs.go -package=mocks

// FileSystem is the subset of filesystem operations the sorter performs.
type FileSystem interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	CopyFile(src, dst string) (int64, error)
	Remove(name string) error
}

// OSFileSystem is the FileSystem backed by package os.
type OSFileSystem struct{}

func (OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

func (OSFileSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (OSFileSystem) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

func (OSFileSystem) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }

func (OSFileSystem) CopyFile(src, dst string) (int64, error) { return CopyFile(src, dst) }

func (OSFileSystem) Remove(name string) error { return os.Remove(name) }
