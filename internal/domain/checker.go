package domain

import (
	"fmt"
	"path/filepath"

	m "pkgward.dev/pkg/pkgward/internal/model"
)

// Mode is the validation policy for a run. It is a closed choice: prefix
// mode and path mode are mutually exclusive, and a file is never checked
// against both rules. Passing the mode explicitly, rather than inspecting
// an optional prefix field at every call site, removes a class of
// "forgot to check the mode" bugs.
type Mode interface {
	isMode()
}

// PathMode requires every file's package to exactly mirror its directory
// path relative to the scan root. Root-level files expect the default
// package.
type PathMode struct {
	// AdvisoryPrefix, when non-empty, emits a warning (never an error)
	// for packages that passed the exact path match but do not fall under
	// the project-wide prefix.
	AdvisoryPrefix m.Namespace
}

// PrefixMode requires every file's package to equal the prefix or start
// with prefix + ".". Directory layout is not checked in this mode.
type PrefixMode struct {
	Prefix m.Namespace
}

func (PathMode) isMode()   {}
func (PrefixMode) isMode() {}

// Check produces exactly one validation outcome for a file given its
// extraction result and the active mode.
func Check(file m.SourceFile, extraction m.Extraction, mode Mode) m.Outcome {
	switch extraction.Kind {
	case m.ExtractionUnreadable:
		return m.Failed(file, fmt.Sprintf("%s: cannot read file: %v", file.Rel, extraction.Cause))
	case m.ExtractionMalformed:
		return m.Failed(file, fmt.Sprintf("%s: malformed package declaration", file.Rel))
	case m.ExtractionDuplicate:
		return m.Failed(file, fmt.Sprintf("%s: multiple package declarations", file.Rel))
	case m.ExtractionValue:
	}

	switch mode := mode.(type) {
	case PrefixMode:
		return checkPrefix(file, extraction.Value, mode)
	case PathMode:
		return checkPath(file, extraction.Value, mode)
	default:
		return m.Failed(file, fmt.Sprintf("%s: no validation mode configured", file.Rel))
	}
}

func checkPrefix(file m.SourceFile, value m.Namespace, mode PrefixMode) m.Outcome {
	if value.IsEmpty() {
		return m.Failed(file, fmt.Sprintf(
			"%s: missing package declaration, expected a namespace starting with %s",
			file.Rel, mode.Prefix,
		))
	}

	if value.Under(mode.Prefix) {
		return m.Passed(file)
	}

	return m.Failed(file, fmt.Sprintf(
		"%s: expected package under %s, found %s",
		file.Rel, mode.Prefix, value,
	))
}

func checkPath(file m.SourceFile, value m.Namespace, mode PathMode) m.Outcome {
	expected := m.NamespaceForDir(filepath.Dir(string(file.Rel)))

	if value != expected {
		return m.Failed(file, fmt.Sprintf(
			"%s: expected package %s, found %s",
			file.Rel, expected, value,
		))
	}

	if !mode.AdvisoryPrefix.IsEmpty() && !value.IsEmpty() && !value.Under(mode.AdvisoryPrefix) {
		return m.Advised(file, fmt.Sprintf(
			"%s: package %s is outside the project prefix %s",
			file.Rel, value, mode.AdvisoryPrefix,
		))
	}

	return m.Passed(file)
}
