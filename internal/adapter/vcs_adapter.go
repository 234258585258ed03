package adapter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
)

// VCSAdapter wraps the version-control operations the deploy workflow
// performs after a successful validation run.
type VCSAdapter interface {
	Add(ctx context.Context, pathspec string) error
	Commit(ctx context.Context, message string) error
	Tag(ctx context.Context, name string) error
	Push(ctx context.Context, remote string, withTags bool) error
}

// GitVCSAdapter implements VCSAdapter by shelling out to the git binary in
// the given working directory.
type GitVCSAdapter struct {
	workDir string
}

// NewGitVCSAdapter constructs a GitVCSAdapter operating in workDir.
func NewGitVCSAdapter(workDir string) *GitVCSAdapter {
	return &GitVCSAdapter{workDir: workDir}
}

// Add stages the given pathspec.
func (g *GitVCSAdapter) Add(ctx context.Context, pathspec string) error {
	return g.run(ctx, "add", pathspec)
}

// Commit records a commit with the given message.
func (g *GitVCSAdapter) Commit(ctx context.Context, message string) error {
	return g.run(ctx, "commit", "-m", message)
}

// Tag creates an annotated tag with the given name.
func (g *GitVCSAdapter) Tag(ctx context.Context, name string) error {
	return g.run(ctx, "tag", "-a", name, "-m", name)
}

// Push pushes the current branch, optionally followed by tags.
func (g *GitVCSAdapter) Push(ctx context.Context, remote string, withTags bool) error {
	if err := g.run(ctx, "push", remote); err != nil {
		return err
	}

	if withTags {
		return g.run(ctx, "push", remote, "--tags")
	}

	return nil
}

func (g *GitVCSAdapter) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.workDir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	slog.Debug("running git", "args", args, "dir", g.workDir)

	if err := cmd.Run(); err != nil {
		slog.Error("git command failed", "args", args, "stderr", stderr.String(), "error", err)
		return fmt.Errorf("git %s: %w: %s", args[0], err, stderr.String())
	}

	return nil
}
