package mover

import (
	"fmt"

	"github.com/vmunix/sortmedia/internal/media"
)

// Status is what happened to one directory entry.
type Status int

const (
	StatusMoved Status = iota
	StatusSkippedOther
	StatusSkippedNotFile
	StatusFailed
	StatusAlreadySorted
)

func (s Status) String() string {
	switch s {
	case StatusMoved:
		return "moved"
	case StatusSkippedOther:
		return "skipped-other"
	case StatusSkippedNotFile:
		return "skipped-not-file"
	case StatusFailed:
		return "failed"
	case StatusAlreadySorted:
		return "already-sorted"
	default:
		return "unknown"
	}
}

// MarshalText lets a Status appear as its name in JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome is the result for one directory entry.
type Outcome struct {
	Name     string         `json:"name"`
	Source   string         `json:"source"`
	Target   string         `json:"target,omitempty"`
	Category media.Category `json:"category"`
	Status   Status         `json:"status"`
	Bytes    int64          `json:"bytes,omitempty"`
	Err      error          `json:"-"`
}

// Report aggregates the outcomes of one ProcessDirectory run.
type Report struct {
	Outcomes       []Outcome `json:"outcomes"`
	Moved          int       `json:"moved"`
	SkippedOther   int       `json:"skipped_other"`
	SkippedNotFile int       `json:"skipped_not_file"`
	AlreadySorted  int       `json:"already_sorted"`
	Failed         int       `json:"failed"`
	BytesMoved     int64     `json:"bytes_moved"`
}

func (r *Report) add(o Outcome) {
	switch o.Status {
	case StatusMoved:
		r.Moved++
		r.BytesMoved += o.Bytes
	case StatusSkippedOther:
		r.SkippedOther++
	case StatusSkippedNotFile:
		r.SkippedNotFile++
	case StatusFailed:
		r.Failed++
	case StatusAlreadySorted:
		r.AlreadySorted++
	}
	r.Outcomes = append(r.Outcomes, o)
}

// Failures returns the outcomes that failed, in listing order.
func (r *Report) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}

// Err returns ErrMovesFailed if any file failed to move.
func (r *Report) Err() error {
	if r.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d", ErrMovesFailed, r.Failed, r.Failed+r.Moved)
}
