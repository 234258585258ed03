package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkgward.dev/pkg/pkgward/internal/adapter"
	m "pkgward.dev/pkg/pkgward/internal/model"
)

func writeTreeFile(t *testing.T, root string, rel string, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func relPaths(files []m.SourceFile) []string {
	rels := make([]string, 0, len(files))
	for _, file := range files {
		rels = append(rels, filepath.ToSlash(string(file.Rel)))
	}

	return rels
}

func TestScanner_FindsRecognizedExtensionsOnly(t *testing.T) {
	root := t.TempDir()
	writeTreeFile(t, root, "foo/Bar.java", "package foo;\n")
	writeTreeFile(t, root, "foo/baz/Qux.kt", "package foo.baz\n")
	writeTreeFile(t, root, "Main.java", "class Main {}\n")
	writeTreeFile(t, root, "README.md", "# readme\n")
	writeTreeFile(t, root, "build/Out.class", "binary\n")

	scanner := NewScanner(adapter.NewLocalSourceFSAdapter())

	files, err := scanner.Scan(context.Background(), m.Path(root), nil)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"foo/Bar.java", "foo/baz/Qux.kt", "Main.java"},
		relPaths(files),
	)

	for _, file := range files {
		if filepath.Ext(string(file.FullPath)) == ".kt" {
			assert.Equal(t, m.LangKotlin, file.Language)
		} else {
			assert.Equal(t, m.LangJava, file.Language)
		}
	}
}

func TestScanner_MissingRoot(t *testing.T) {
	scanner := NewScanner(adapter.NewLocalSourceFSAdapter())

	_, err := scanner.Scan(context.Background(), m.Path(filepath.Join(t.TempDir(), "absent")), nil)

	require.ErrorIs(t, err, ErrRootNotFound)
}

func TestScanner_RootIsAFile(t *testing.T) {
	root := t.TempDir()
	writeTreeFile(t, root, "plain.java", "package x;\n")

	scanner := NewScanner(adapter.NewLocalSourceFSAdapter())

	_, err := scanner.Scan(context.Background(), m.Path(filepath.Join(root, "plain.java")), nil)

	require.ErrorIs(t, err, ErrRootNotFound)
}

func TestScanner_EmptyTree(t *testing.T) {
	scanner := NewScanner(adapter.NewLocalSourceFSAdapter())

	files, err := scanner.Scan(context.Background(), m.Path(t.TempDir()), nil)

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanner_ExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeTreeFile(t, root, "foo/Bar.java", "package foo;\n")
	writeTreeFile(t, root, "generated/Gen.java", "package generated;\n")

	scanner := NewScanner(adapter.NewLocalSourceFSAdapter())

	files, err := scanner.Scan(context.Background(), m.Path(root), []string{"^generated/"})
	require.NoError(t, err)

	assert.Equal(t, []string{"foo/Bar.java"}, relPaths(files))
}

func TestScanner_InvalidExcludePattern(t *testing.T) {
	scanner := NewScanner(adapter.NewLocalSourceFSAdapter())

	_, err := scanner.Scan(context.Background(), m.Path(t.TempDir()), []string{"("})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestScanner_GitignoreAtRootIsHonored(t *testing.T) {
	root := t.TempDir()
	writeTreeFile(t, root, ".gitignore", "vendored/\n")
	writeTreeFile(t, root, "foo/Bar.java", "package foo;\n")
	writeTreeFile(t, root, "vendored/Third.java", "package vendored;\n")

	scanner := NewScanner(adapter.NewLocalSourceFSAdapter())

	files, err := scanner.Scan(context.Background(), m.Path(root), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"foo/Bar.java"}, relPaths(files))
}

func TestScanner_EachFileAppearsOnce(t *testing.T) {
	root := t.TempDir()
	writeTreeFile(t, root, "a/A.java", "package a;\n")
	writeTreeFile(t, root, "a/b/B.java", "package a.b;\n")

	scanner := NewScanner(adapter.NewLocalSourceFSAdapter())

	files, err := scanner.Scan(context.Background(), m.Path(root), nil)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, rel := range relPaths(files) {
		seen[rel]++
	}

	for rel, count := range seen {
		assert.Equal(t, 1, count, "file %s discovered more than once", rel)
	}

	assert.Len(t, files, 2)
}
