package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	m "pkgward.dev/pkg/pkgward/internal/model"
)

// summaryFileName is the file the latest run summary is persisted to
// inside the reports directory.
const summaryFileName = "summary.yaml"

// ReportStore persists run summaries so they can be re-rendered later and
// consumed by the deploy workflow.
type ReportStore interface {
	SaveSummary(dir m.Path, summary m.Summary) error
	LoadSummary(dir m.Path) (m.Summary, error)
}

// LocalReportStore stores summaries as YAML files on the local filesystem.
type LocalReportStore struct{}

// NewLocalReportStore constructs a LocalReportStore.
func NewLocalReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveSummary writes the summary to <dir>/summary.yaml, creating the
// directory if needed.
func (s *LocalReportStore) SaveSummary(dir m.Path, summary m.Summary) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	target := filepath.Join(string(dir), summaryFileName)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}

// LoadSummary reads the summary previously saved under dir.
func (s *LocalReportStore) LoadSummary(dir m.Path) (m.Summary, error) {
	target := filepath.Join(string(dir), summaryFileName)

	data, err := os.ReadFile(target)
	if err != nil {
		return m.Summary{}, fmt.Errorf("read summary: %w", err)
	}

	var summary m.Summary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return m.Summary{}, fmt.Errorf("decode summary: %w", err)
	}

	return summary, nil
}
