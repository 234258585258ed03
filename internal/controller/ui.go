// Package controller provides output and interaction adapters for the
// pkgward CLI.
package controller

import (
	"context"
	"os"

	"golang.org/x/term"
	m "pkgward.dev/pkg/pkgward/internal/model"
)

// UI defines the interface for presenting validation runs and for the
// interactive parts of the deploy flow. Implementations must tolerate
// concurrent DisplayFileOutcome calls from worker goroutines.
type UI interface {
	// DisplayScanInfo announces how many files a run will check.
	DisplayScanInfo(ctx context.Context, root m.Path, count int)

	// DisplayFileOutcome prints one file's incremental result.
	DisplayFileOutcome(ctx context.Context, outcome m.Outcome)

	// DisplaySummary renders the aggregated run report: counts first,
	// then the full error list, then the full warning list.
	DisplaySummary(ctx context.Context, summary m.Summary) error

	// PromptVersionBump interactively asks which of the candidate next
	// versions to release and returns the chosen one.
	PromptVersionBump(ctx context.Context, current string, choices []BumpChoice) (string, error)
}

// BumpChoice is one selectable next version in the bump prompt.
type BumpChoice struct {
	Label   string
	Version string
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
