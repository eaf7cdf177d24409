package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vmunix/sortmedia/internal/mover"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 when the run finished but some files failed to move,
// and 1 for every error that stopped the run.
func exitCode(err error) int {
	if errors.Is(err, mover.ErrMovesFailed) {
		return 2
	}
	return 1
}
