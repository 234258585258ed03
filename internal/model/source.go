package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Language identifies the declaration syntax of a source file.
type Language string

const (
	// LangJava requires the package statement to end with a semicolon.
	LangJava Language = "java"

	// LangKotlin accepts a package statement terminated by end of line.
	LangKotlin Language = "kotlin"
)

// extensions maps recognized file extensions to their language.
var extensions = map[string]Language{
	".java": LangJava,
	".kt":   LangKotlin,
}

// LanguageForPath returns the language for a file path based on its
// extension. The second return value is false for unrecognized extensions.
func LanguageForPath(path Path) (Language, bool) {
	lang, ok := extensions[filepath.Ext(string(path))]
	return lang, ok
}

// SourceFile is a source file discovered under the scan root.
type SourceFile struct {
	// FullPath is the path as reported by the walker.
	FullPath Path

	// Rel is the path relative to the scan root. Error messages and the
	// path-mode expectation are derived from it.
	Rel Path

	// Language selects the accepted package statement syntax.
	Language Language
}
