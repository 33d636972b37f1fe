// Package controller provides output adapters for displaying scan results.
package controller

import (
	"context"
	"os"

	"golang.org/x/term"

	m "markhound.dev/pkg/markhound/internal/model"
)

// UI defines the interface for presenting scan results. Implementations can
// use different output methods (plain text, interactive TUI).
type UI interface {
	// DisplayFileStats renders per-file test counts (the list command).
	DisplayFileStats(ctx context.Context, results []m.FileResult) error

	// DisplaySummary renders the outcome of a check: a confirmation message
	// on stdout when every test is categorized, otherwise the unmarked
	// findings on stderr preceded by a count line.
	DisplaySummary(ctx context.Context, summary *m.ScanSummary) error
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
