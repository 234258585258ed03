package model

import (
	"path/filepath"
	"strings"
)

// Namespace is a dotted package name in canonical form. The empty string
// denotes the default (unnamed) package.
type Namespace string

// DefaultLabel is how the empty namespace is rendered in messages.
const DefaultLabel = "(default)"

// IsEmpty reports whether the namespace is the default package.
func (n Namespace) IsEmpty() bool {
	return n == ""
}

// Segments returns the dot-separated identifier segments, or nil for the
// default package.
func (n Namespace) Segments() []string {
	if n.IsEmpty() {
		return nil
	}

	return strings.Split(string(n), ".")
}

// Under reports whether the namespace equals prefix or falls below it
// (prefix followed by a dot).
func (n Namespace) Under(prefix Namespace) bool {
	return n == prefix || strings.HasPrefix(string(n), string(prefix)+".")
}

// String renders the namespace, using DefaultLabel for the default package.
func (n Namespace) String() string {
	if n.IsEmpty() {
		return DefaultLabel
	}

	return string(n)
}

// NamespaceForDir converts a slash- or OS-separated relative directory into
// the namespace expected in path mode. "." and the empty string map to the
// default package.
func NamespaceForDir(dir string) Namespace {
	if dir == "" || dir == "." {
		return ""
	}

	dir = filepath.ToSlash(dir)

	return Namespace(strings.ReplaceAll(dir, "/", "."))
}
