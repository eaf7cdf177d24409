// internal/mover/copy_test.go
package mover

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCopyFile(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	content := "test image content"
	srcPath := writeFile(t, srcDir, "test.jpg", content)

	dstPath := filepath.Join(dstDir, "test.jpg")
	size, err := CopyFile(srcPath, dstPath)
	if err != nil {
		t.Fatalf("CopyFile: %v", err)
	}

	if size != int64(len(content)) {
		t.Errorf("size = %d, want %d", size, len(content))
	}

	got, err := os.ReadFile(dstPath)
	if err != nil {
		t.Fatalf("read dest: %v", err)
	}
	if string(got) != content {
		t.Error("content mismatch")
	}

	// Copy leaves the source alone
	if _, err := os.Stat(srcPath); err != nil {
		t.Errorf("source should still exist: %v", err)
	}
}

func TestCopyFile_KeepsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	srcDir := t.TempDir()
	srcPath := filepath.Join(srcDir, "script.mp4")
	if err := os.WriteFile(srcPath, []byte("data"), 0600); err != nil {
		t.Fatalf("create source: %v", err)
	}

	dstPath := filepath.Join(t.TempDir(), "script.mp4")
	if _, err := CopyFile(srcPath, dstPath); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}

	info, err := os.Stat(dstPath)
	if err != nil {
		t.Fatalf("stat dest: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %o, want 600", info.Mode().Perm())
	}
}

func TestCopyFile_ReplacesExisting(t *testing.T) {
	srcPath := writeFile(t, t.TempDir(), "a.png", "new")
	dstDir := t.TempDir()
	dstPath := writeFile(t, dstDir, "a.png", "old content that is longer")

	if _, err := CopyFile(srcPath, dstPath); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}

	got, err := os.ReadFile(dstPath)
	if err != nil {
		t.Fatalf("read dest: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestCopyFile_SourceNotFound(t *testing.T) {
	dstDir := t.TempDir()
	_, err := CopyFile("/nonexistent/file.jpg", filepath.Join(dstDir, "out.jpg"))
	if !errors.Is(err, ErrCopyFailed) {
		t.Errorf("expected ErrCopyFailed, got %v", err)
	}
}

func TestCopyFile_DestinationDirMissing(t *testing.T) {
	srcPath := writeFile(t, t.TempDir(), "a.jpg", "content")

	_, err := CopyFile(srcPath, filepath.Join(t.TempDir(), "missing", "a.jpg"))
	if !errors.Is(err, ErrCopyFailed) {
		t.Errorf("expected ErrCopyFailed, got %v", err)
	}
}

func TestCopyFile_FailureLeavesExistingTarget(t *testing.T) {
	// Reading a directory fails after the temp file has been created
	src := t.TempDir()
	dstDir := t.TempDir()
	dstPath := writeFile(t, dstDir, "a.png", "previous")

	_, err := CopyFile(src, dstPath)
	if !errors.Is(err, ErrCopyFailed) {
		t.Fatalf("expected ErrCopyFailed, got %v", err)
	}

	got, err := os.ReadFile(dstPath)
	if err != nil {
		t.Fatalf("read dest: %v", err)
	}
	if string(got) != "previous" {
		t.Errorf("content = %q, want %q", got, "previous")
	}

	// The temp file is cleaned up
	entries, err := os.ReadDir(dstDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target in %s, got %d entries", dstDir, len(entries))
	}
}

func TestCopyFile_NoTempFileLeftBehind(t *testing.T) {
	srcPath := writeFile(t, t.TempDir(), "a.jpg", "content")
	dstDir := t.TempDir()

	if _, err := CopyFile(srcPath, filepath.Join(dstDir, "a.jpg")); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}

	entries, err := os.ReadDir(dstDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "a.jpg" {
		t.Errorf("expected only a.jpg, got %v", entries)
	}
}
