package domain

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	m "pkgward.dev/pkg/pkgward/internal/model"
)

// ErrNotText is the Unreadable cause for content that does not decode as
// UTF-8 text.
var ErrNotText = errors.New("content is not valid UTF-8 text")

const declarationKeyword = "package"

// identPattern accepts dot-separated segments of ASCII letters, digits and
// underscores.
var identPattern = regexp.MustCompile(`^[A-Za-z0-9_]+(?:\.[A-Za-z0-9_]+)*$`)

// ExtractDeclaration locates the package statement in the file content and
// returns its dotted value.
//
// The search is a line-prefix heuristic, not a lexer: any line whose
// leading-whitespace-trimmed form starts with "//" or "/*" is discarded
// before the search. A declaration sharing a physical line with trailing
// code, or sitting inside a block comment on a line without its own
// marker, is not reliably handled. This is a documented limitation.
//
// Zero declaration lines extract as the empty namespace; the extractor is
// mode-agnostic and leaves the decision whether that is acceptable to the
// checker. Two or more declaration lines are always a duplicate error.
func ExtractDeclaration(content []byte, lang m.Language) m.Extraction {
	if !utf8.Valid(content) {
		return m.Extraction{Kind: m.ExtractionUnreadable, Cause: ErrNotText}
	}

	declarations := declarationLines(string(content))

	switch len(declarations) {
	case 0:
		return m.ValueOf("")
	case 1:
		return parseDeclaration(declarations[0], lang)
	default:
		return m.Extraction{Kind: m.ExtractionDuplicate}
	}
}

// declarationLines returns the trimmed candidate declaration lines, with
// comment-prefixed lines excluded.
func declarationLines(content string) []string {
	var found []string

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)

		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") {
			continue
		}

		if isDeclarationLine(trimmed) {
			found = append(found, trimmed)
		}
	}

	return found
}

// isDeclarationLine reports whether the trimmed line starts with the
// package keyword followed by whitespace.
func isDeclarationLine(trimmed string) bool {
	if !strings.HasPrefix(trimmed, declarationKeyword) {
		return false
	}

	rest := trimmed[len(declarationKeyword):]

	return rest != "" && (rest[0] == ' ' || rest[0] == '\t')
}

// parseDeclaration parses the dotted identifier following the keyword. Java
// requires a semicolon terminator on the same line; Kotlin takes the
// identifier up to the first whitespace or end of line. The syntax is
// selected by language, never auto-detected.
func parseDeclaration(line string, lang m.Language) m.Extraction {
	rest := strings.TrimSpace(line[len(declarationKeyword):])

	var ident string

	switch lang {
	case m.LangJava:
		terminator := strings.IndexByte(rest, ';')
		if terminator < 0 {
			return m.Extraction{Kind: m.ExtractionMalformed}
		}

		ident = strings.TrimSpace(rest[:terminator])

	case m.LangKotlin:
		fields := strings.Fields(rest)
		if len(fields) > 0 {
			ident = fields[0]
		}

	default:
		return m.Extraction{Kind: m.ExtractionMalformed}
	}

	// An empty identifier normalizes to the default namespace; whether
	// that is an error depends on the mode.
	if ident == "" {
		return m.ValueOf("")
	}

	if !identPattern.MatchString(ident) {
		return m.Extraction{Kind: m.ExtractionMalformed}
	}

	return m.ValueOf(m.Namespace(ident))
}
