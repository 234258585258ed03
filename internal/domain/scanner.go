// Package domain contains the validation engine: tree scanning, package
// declaration extraction, consistency checking, and run aggregation.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"pkgward.dev/pkg/pkgward/internal/adapter"
	m "pkgward.dev/pkg/pkgward/internal/model"
)

// ErrRootNotFound is returned when the scan root does not exist. It is the
// only fatal condition of a run: no per-file report is produced.
var ErrRootNotFound = errors.New("scan root not found")

// Scanner discovers candidate source files under a root directory.
type Scanner interface {
	// Scan returns all regular files under root with a recognized source
	// extension, in walk order. Exclude patterns are regular expressions
	// matched against the root-relative path.
	Scan(ctx context.Context, root m.Path, exclude []string) ([]m.SourceFile, error)
}

type scanner struct {
	fs adapter.SourceFSAdapter
}

// NewScanner constructs a Scanner backed by the provided filesystem adapter.
func NewScanner(fs adapter.SourceFSAdapter) Scanner {
	return &scanner{fs: fs}
}

func (s *scanner) Scan(ctx context.Context, root m.Path, exclude []string) ([]m.SourceFile, error) {
	info, err := s.fs.FileInfo(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	patterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	ignoreMatcher := s.loadIgnoreRules(root)

	var files []m.SourceFile

	walkErr := s.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			// A subtree we cannot stat is skipped, not fatal.
			slog.Warn("skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}

		lang, ok := m.LanguageForPath(m.Path(path))
		if !ok {
			return nil
		}

		rel, err := s.fs.RelPath(root, m.Path(path))
		if err != nil {
			return err
		}

		relSlash := filepath.ToSlash(string(rel))

		if ignoreMatcher != nil && ignoreMatcher.MatchesPath(relSlash) {
			slog.Debug("ignored by .gitignore", "path", relSlash)
			return nil
		}

		if matchesAny(patterns, relSlash) {
			slog.Debug("excluded by pattern", "path", relSlash)
			return nil
		}

		files = append(files, m.SourceFile{
			FullPath: m.Path(path),
			Rel:      rel,
			Language: lang,
		})

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	slog.Debug("scan completed", "root", root, "files", len(files))

	return files, nil
}

// loadIgnoreRules compiles the .gitignore at the scan root, when present.
func (s *scanner) loadIgnoreRules(root m.Path) *gitignore.GitIgnore {
	content, err := s.fs.ReadFile(s.fs.JoinPath(string(root), ".gitignore"))
	if err != nil {
		return nil
	}

	return gitignore.CompileIgnoreLines(strings.Split(string(content), "\n")...)
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, raw := range exclude {
		pattern, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", raw, err)
		}

		patterns = append(patterns, pattern)
	}

	return patterns, nil
}

func matchesAny(patterns []*regexp.Regexp, path string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(path) {
			return true
		}
	}

	return false
}
