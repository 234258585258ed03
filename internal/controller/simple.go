package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "pkgward.dev/pkg/pkgward/internal/model"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd   *cobra.Command
	isTTY bool
	mu    sync.Mutex
}

// NewUI creates a SimpleUI. isTTY controls whether interactive prompts are
// available.
func NewUI(cmd *cobra.Command, isTTY bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, isTTY: isTTY}
}

// DisplayScanInfo announces the number of files to check.
func (s *SimpleUI) DisplayScanInfo(ctx context.Context, root m.Path, count int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Checking %d source file(s) under %s\n", count, root)
}

// DisplayFileOutcome prints one file's incremental result. Workers call
// this concurrently; the internal mutex keeps lines whole, though their
// relative order follows execution, not discovery.
func (s *SimpleUI) DisplayFileOutcome(ctx context.Context, outcome m.Outcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	switch outcome.Status {
	case m.Pass:
		s.printf("  %s %s\n", passStyle.Render("ok"), outcome.File.Rel)
	case m.Error:
		s.printf("  %s %s\n", failStyle.Render("ERR"), outcome.Message)
	case m.Warning:
		s.printf("  %s %s\n", warnStyle.Render("warn"), outcome.Message)
	}
}

// DisplaySummary renders counts first, then all errors, then all warnings.
// When both lists are empty an explicit all-clear line is printed.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(summary))

	for _, message := range summary.Errors {
		s.printf("%s %s\n", failStyle.Render("error:"), message)
	}

	for _, message := range summary.Warnings {
		s.printf("%s %s\n", warnStyle.Render("warning:"), message)
	}

	if len(summary.Errors) == 0 && len(summary.Warnings) == 0 {
		s.printf("%s\n", passStyle.Render("All package declarations are consistent."))
	}

	return nil
}

func renderSummaryTable(summary m.Summary) string {
	var buffer bytes.Buffer

	result := "PASS"
	if !summary.Success() {
		result = "FAIL"
	}

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"Files", "Errors", "Warnings"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})
	table.Append([]string{
		fmt.Sprintf("%d", summary.FilesChecked),
		fmt.Sprintf("%d", len(summary.Errors)),
		fmt.Sprintf("%d", len(summary.Warnings)),
	})
	table.SetFooter([]string{"Result", result, ""})
	table.Render()

	return buffer.String()
}

// PromptVersionBump runs the interactive bump prompt. It refuses to prompt
// when stdout is not a terminal so CI runs fail fast instead of hanging.
func (s *SimpleUI) PromptVersionBump(ctx context.Context, current string, choices []BumpChoice) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if !s.isTTY {
		return "", errors.New("not a terminal: pass --bump or --release-version to select the next version")
	}

	return runBumpPrompt(current, choices, os.Stdout)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
