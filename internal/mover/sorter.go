// Package mover sorts the files of a directory into per-category
// destination directories.
package mover

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/vmunix/sortmedia/internal/media"
)

// Options configures a Sorter.
type Options struct {
	// HomeDir is the root for relative destinations. Required.
	HomeDir string

	// Destinations defaults to media.DefaultDestinations().
	Destinations *media.Destinations

	// CreateDirs creates missing destination directories before moving.
	// When false a missing directory fails each file bound for it.
	CreateDirs bool

	// FS defaults to OSFileSystem.
	FS FileSystem

	Logger *slog.Logger
}

// Sorter moves the media files of a directory to their destinations.
type Sorter struct {
	fs           FileSystem
	homeDir      string
	destinations media.Destinations
	createDirs   bool
	log          *slog.Logger
}

// New creates a Sorter with the given options.
func New(opts Options) *Sorter {
	s := &Sorter{
		fs:           opts.FS,
		homeDir:      opts.HomeDir,
		destinations: media.DefaultDestinations(),
		createDirs:   opts.CreateDirs,
		log:          opts.Logger,
	}
	if opts.Destinations != nil {
		s.destinations = *opts.Destinations
	}
	if s.fs == nil {
		s.fs = OSFileSystem{}
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// ProcessDirectory moves every image and video directly inside sourceDir.
// Subdirectories are not descended into. A file that cannot be moved is
// recorded in the report and the run continues; only a failure to list
// sourceDir is returned as an error.
func (s *Sorter) ProcessDirectory(sourceDir string) (*Report, error) {
	entries, err := s.fs.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryRead, sourceDir, err)
	}

	s.log.Debug("processing directory", "dir", sourceDir, "entries", len(entries))

	report := &Report{}
	run := &dirRun{source: absPath(sourceDir), ensured: make(map[string]bool)}
	for _, entry := range entries {
		report.add(s.processEntry(sourceDir, entry, run))
	}

	s.log.Info("directory processed",
		"dir", sourceDir,
		"moved", report.Moved,
		"skipped_other", report.SkippedOther,
		"skipped_not_file", report.SkippedNotFile,
		"already_sorted", report.AlreadySorted,
		"failed", report.Failed)
	return report, nil
}

// dirRun is the per-call state of ProcessDirectory.
type dirRun struct {
	source  string          // absolute source directory
	ensured map[string]bool // destination directories already created
}

func (s *Sorter) processEntry(sourceDir string, entry fs.DirEntry, run *dirRun) Outcome {
	name := entry.Name()
	src := filepath.Join(sourceDir, name)
	out := Outcome{Name: name, Source: src}

	if !entry.Type().IsRegular() {
		out.Status = StatusSkippedNotFile
		s.log.Debug("skipped", "path", src, "reason", "not a file")
		return out
	}

	if _, err := media.Extension(name); err != nil {
		s.log.Debug("unparseable extension", "path", src, "error", err)
	}
	out.Category = media.Classify(name)

	dir, ok := s.destinations.Resolve(out.Category, s.homeDir)
	if !ok {
		out.Status = StatusSkippedOther
		s.log.Debug("skipped", "path", src, "reason", "other file")
		return out
	}
	out.Target = filepath.Join(dir, name)

	if absPath(dir) == run.source {
		out.Status = StatusAlreadySorted
		s.log.Debug("skipped", "path", src, "reason", "already in destination")
		return out
	}

	if err := s.ensureDir(dir, run.ensured); err != nil {
		return s.fail(out, err)
	}

	size, err := Move(s.fs, src, out.Target)
	if err != nil {
		return s.fail(out, err)
	}

	out.Status = StatusMoved
	out.Bytes = size
	s.log.Info("moved", "from", src, "to", out.Target, "category", out.Category, "bytes", size)
	return out
}

func (s *Sorter) ensureDir(dir string, ensured map[string]bool) error {
	if !s.createDirs || ensured[dir] {
		return nil
	}
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	ensured[dir] = true
	return nil
}

func (s *Sorter) fail(out Outcome, err error) Outcome {
	var me *MoveError
	if !errors.As(err, &me) {
		err = &MoveError{Src: out.Source, Dst: out.Target, Err: err}
	}
	out.Status = StatusFailed
	out.Err = err
	s.log.Warn("move failed", "from", out.Source, "to", out.Target, "error", err)
	return out
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
