package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "pkgward.dev/pkg/pkgward/internal/model"
)

func TestSummarize_CountsAndOrder(t *testing.T) {
	outcomes := []m.Outcome{
		m.Passed(sourceFile("a/A.java")),
		m.Failed(sourceFile("b/B.java"), "first error"),
		m.Advised(sourceFile("c/C.java"), "first warning"),
		m.Failed(sourceFile("d/D.java"), "second error"),
	}

	summary := Summarize(outcomes)

	assert.Equal(t, 4, summary.FilesChecked)
	require.Equal(t, []string{"first error", "second error"}, summary.Errors)
	require.Equal(t, []string{"first warning"}, summary.Warnings)
	assert.False(t, summary.Success())
}

func TestSummarize_WarningsDoNotAffectSuccess(t *testing.T) {
	summary := Summarize([]m.Outcome{
		m.Passed(sourceFile("a/A.java")),
		m.Advised(sourceFile("b/B.java"), "advisory"),
	})

	assert.True(t, summary.Success())
	assert.Equal(t, 2, summary.FilesChecked)
	assert.Empty(t, summary.Errors)
}

func TestSummarize_EmptyRunSucceeds(t *testing.T) {
	summary := Summarize(nil)

	assert.True(t, summary.Success())
	assert.Equal(t, 0, summary.FilesChecked)
}
