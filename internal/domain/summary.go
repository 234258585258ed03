package domain

import (
	m "pkgward.dev/pkg/pkgward/internal/model"
)

// Summarize folds per-file outcomes into a run summary. Outcomes must be in
// discovery order; the fold preserves it for the error and warning lists.
// Aggregation is a pure function over the outcome slice rather than hidden
// mutable state, so parallel producers only need to deliver the slice in
// order.
func Summarize(outcomes []m.Outcome) m.Summary {
	summary := m.Summary{FilesChecked: len(outcomes)}

	for _, outcome := range outcomes {
		switch outcome.Status {
		case m.Pass:
		case m.Error:
			summary.Errors = append(summary.Errors, outcome.Message)
		case m.Warning:
			summary.Warnings = append(summary.Warnings, outcome.Message)
		}
	}

	return summary
}
