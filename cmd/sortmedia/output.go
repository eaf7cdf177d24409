package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/vmunix/sortmedia/internal/mover"
)

// outcomeJSON adds the error message, which Outcome does not serialize.
type outcomeJSON struct {
	mover.Outcome
	Error string `json:"error,omitempty"`
}

type reportJSON struct {
	Moved          int           `json:"moved"`
	SkippedOther   int           `json:"skipped_other"`
	SkippedNotFile int           `json:"skipped_not_file"`
	AlreadySorted  int           `json:"already_sorted"`
	Failed         int           `json:"failed"`
	BytesMoved     int64         `json:"bytes_moved"`
	Outcomes       []outcomeJSON `json:"outcomes"`
}

func printJSON(w io.Writer, r *mover.Report) error {
	out := reportJSON{
		Moved:          r.Moved,
		SkippedOther:   r.SkippedOther,
		SkippedNotFile: r.SkippedNotFile,
		AlreadySorted:  r.AlreadySorted,
		Failed:         r.Failed,
		BytesMoved:     r.BytesMoved,
		Outcomes:       make([]outcomeJSON, 0, len(r.Outcomes)),
	}
	for _, o := range r.Outcomes {
		oj := outcomeJSON{Outcome: o}
		if o.Err != nil {
			oj.Error = o.Err.Error()
		}
		out.Outcomes = append(out.Outcomes, oj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printReport(w io.Writer, r *mover.Report) {
	colorize := isTerminal(w)

	failed := strconv.Itoa(r.Failed)
	if colorize && r.Failed > 0 {
		failed = text.Colors{text.FgRed, text.Bold}.Sprint(failed)
	}
	rows := [][]string{
		{"Moved", strconv.Itoa(r.Moved), humanize.Bytes(uint64(r.BytesMoved))},
		{"Skipped (other)", strconv.Itoa(r.SkippedOther), ""},
		{"Skipped (not a file)", strconv.Itoa(r.SkippedNotFile), ""},
		{"Already sorted", strconv.Itoa(r.AlreadySorted), ""},
		{"Failed", failed, ""},
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Result", "Files", "Size"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
		colorize,
	))

	failures := r.Failures()
	if len(failures) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%d file(s) could not be moved:\n", len(failures))
	for _, o := range failures {
		fmt.Fprintf(w, "  %s: %v\n", o.Name, o.Err)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
