package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
	"pkgward.dev/pkg/pkgward/internal/adapter"
	"pkgward.dev/pkg/pkgward/internal/controller"
	m "pkgward.dev/pkg/pkgward/internal/model"
)

// ValidateArgs contains the arguments for one validation run.
type ValidateArgs struct {
	Root    m.Path
	Mode    Mode
	Exclude []string
	Threads int

	// Quiet suppresses the per-file progress narration and the rendered
	// summary. The summary struct is still returned, so the deploy
	// workflow can reuse the result programmatically.
	Quiet bool

	// Reports, when non-empty, is the directory the run summary is
	// persisted to.
	Reports m.Path
}

// DeployArgs contains the arguments for the release workflow.
type DeployArgs struct {
	ValidateArgs

	Project string
	Version string
	Remote  string
}

// ViewArgs contains the arguments for re-rendering a persisted summary.
type ViewArgs struct {
	Reports m.Path
}

// Workflow is the use-case layer tying the scanner, extractor, checker and
// adapters together.
type Workflow interface {
	Validate(ctx context.Context, args ValidateArgs) (m.Summary, error)
	Deploy(ctx context.Context, args DeployArgs) (m.Summary, error)
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	fs       adapter.SourceFSAdapter
	scanner  Scanner
	reports  adapter.ReportStore
	registry adapter.RegistryAdapter
	vcs      adapter.VCSAdapter
	ui       controller.UI
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(
	fs adapter.SourceFSAdapter,
	scanner Scanner,
	reports adapter.ReportStore,
	registry adapter.RegistryAdapter,
	vcs adapter.VCSAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		fs:       fs,
		scanner:  scanner,
		reports:  reports,
		registry: registry,
		vcs:      vcs,
		ui:       ui,
	}
}

// Validate scans the tree and checks every discovered file against the
// active mode. Files are processed by a bounded worker pool; each worker
// writes into its own slot of an index-addressed slice, so the summary
// keeps discovery order no matter how execution interleaves.
func (w *workflow) Validate(ctx context.Context, args ValidateArgs) (m.Summary, error) {
	files, err := w.scanner.Scan(ctx, args.Root, args.Exclude)
	if err != nil {
		return m.Summary{}, err
	}

	if !args.Quiet {
		w.ui.DisplayScanInfo(ctx, args.Root, len(files))
	}

	outcomes := make([]m.Outcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(normalizeThreads(args.Threads))

	for i, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			outcomes[i] = Check(file, w.extract(file), args.Mode)

			if !args.Quiet {
				w.ui.DisplayFileOutcome(groupCtx, outcomes[i])
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.Summary{}, err
	}

	summary := Summarize(outcomes)

	if args.Reports != "" {
		if err := w.reports.SaveSummary(args.Reports, summary); err != nil {
			return m.Summary{}, fmt.Errorf("persist summary: %w", err)
		}
	}

	if !args.Quiet {
		if err := w.ui.DisplaySummary(ctx, summary); err != nil {
			return m.Summary{}, err
		}
	}

	slog.Info("validation run finished",
		"root", args.Root,
		"files", summary.FilesChecked,
		"errors", len(summary.Errors),
		"warnings", len(summary.Warnings),
	)

	return summary, nil
}

// extract reads one file and extracts its package declaration. A read
// failure becomes an Unreadable extraction; it never aborts the run.
func (w *workflow) extract(file m.SourceFile) m.Extraction {
	content, err := w.fs.ReadFile(file.FullPath)
	if err != nil {
		slog.Warn("failed to read source file", "path", file.FullPath, "error", err)
		return m.Extraction{Kind: m.ExtractionUnreadable, Cause: err}
	}

	return ExtractDeclaration(content, file.Language)
}

// Deploy gates the release on a quiet validation run, then performs the
// registry validation and the version-control steps.
func (w *workflow) Deploy(ctx context.Context, args DeployArgs) (m.Summary, error) {
	validateArgs := args.ValidateArgs
	validateArgs.Quiet = true

	summary, err := w.Validate(ctx, validateArgs)
	if err != nil {
		return m.Summary{}, err
	}

	if !summary.Success() {
		return summary, fmt.Errorf("validation failed with %d error(s), refusing to deploy", len(summary.Errors))
	}

	if err := w.registry.Validate(ctx, args.Project, args.Version); err != nil {
		return summary, fmt.Errorf("registry validation: %w", err)
	}

	tag := releaseTag(args.Version)

	if err := w.vcs.Add(ctx, "."); err != nil {
		return summary, err
	}

	if err := w.vcs.Commit(ctx, fmt.Sprintf("release %s", args.Version)); err != nil {
		return summary, err
	}

	if err := w.vcs.Tag(ctx, tag); err != nil {
		return summary, err
	}

	if err := w.vcs.Push(ctx, args.Remote, true); err != nil {
		return summary, err
	}

	slog.Info("deployed release", "project", args.Project, "version", args.Version, "tag", tag)

	return summary, nil
}

// View re-renders the last persisted run summary.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	summary, err := w.reports.LoadSummary(args.Reports)
	if err != nil {
		return err
	}

	return w.ui.DisplaySummary(ctx, summary)
}

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}

func releaseTag(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}

	return "v" + version
}
