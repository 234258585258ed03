package model

// ExtractionKind tags the result of extracting a package declaration.
type ExtractionKind int

const (
	// ExtractionValue means a declaration value was extracted. A file with
	// no declaration at all extracts as the empty namespace; whether that
	// is acceptable depends on the validation mode, which the extractor
	// does not know about.
	ExtractionValue ExtractionKind = iota

	// ExtractionUnreadable means the file could not be read or decoded.
	ExtractionUnreadable

	// ExtractionMalformed means a package statement was found but its
	// identifier could not be parsed under the file's syntax.
	ExtractionMalformed

	// ExtractionDuplicate means more than one package statement was found.
	// Always an error, independent of mode.
	ExtractionDuplicate
)

// Extraction is the outcome of extracting the package declaration from one
// source file.
type Extraction struct {
	Kind  ExtractionKind
	Value Namespace

	// Cause carries the read/decode failure for Unreadable extractions.
	Cause error
}

// ValueOf returns a successful extraction carrying the given namespace.
func ValueOf(value Namespace) Extraction {
	return Extraction{Kind: ExtractionValue, Value: value}
}

// Status classifies the validation outcome for one file.
type Status int

const (
	// Pass means the declaration is consistent with the active mode.
	Pass Status = iota

	// Error fails the run.
	Error

	// Warning is advisory and never fails the run.
	Warning
)

// Outcome is the per-file validation result.
type Outcome struct {
	File    SourceFile
	Status  Status
	Message string
}

// Passed returns a passing outcome for the file.
func Passed(file SourceFile) Outcome {
	return Outcome{File: file, Status: Pass}
}

// Failed returns an error outcome with the given message.
func Failed(file SourceFile, message string) Outcome {
	return Outcome{File: file, Status: Error, Message: message}
}

// Advised returns a warning outcome with the given message.
func Advised(file SourceFile, message string) Outcome {
	return Outcome{File: file, Status: Warning, Message: message}
}
