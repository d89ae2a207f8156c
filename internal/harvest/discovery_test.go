package harvest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for FileDiscovery:
// - Find files with eligible extensions at any depth
// - Skip files with other extensions
// - Skip everything under ignored directories, nested or top-level
// - Match extensions case-insensitively

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFileDiscovery_FindsEligibleFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "README.md", "readme")
	writeFile(t, root, "docs/guide.markdown", "guide")
	writeFile(t, root, "demos/page.html", "page")
	writeFile(t, root, "src/app.ts", "app")
	writeFile(t, root, "diagrams/flow.mermaid", "flowchart LR\nA-->B")
	writeFile(t, root, "logo.png", "binary-ish")
	writeFile(t, root, "notes.txt", "notes")

	cfg := DefaultConfig(root)
	fd, err := NewFileDiscovery(root, cfg.Extensions, cfg.IgnorePatterns)
	require.NoError(t, err)

	files, err := fd.DiscoverFiles()
	require.NoError(t, err)

	rel := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}

	assert.ElementsMatch(t, []string{
		"README.md",
		"docs/guide.markdown",
		"demos/page.html",
		"src/app.ts",
		"diagrams/flow.mermaid",
	}, rel)
}

func TestFileDiscovery_SkipsIgnoredDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "keep.md", "keep")
	writeFile(t, root, "node_modules/pkg/readme.md", "skip")
	writeFile(t, root, "packages/app/node_modules/dep/doc.md", "skip")
	writeFile(t, root, "dist/bundle.js", "skip")
	writeFile(t, root, "build/page.html", "skip")

	cfg := DefaultConfig(root)
	fd, err := NewFileDiscovery(root, cfg.Extensions, cfg.IgnorePatterns)
	require.NoError(t, err)

	files, err := fd.DiscoverFiles()
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "keep.md", filepath.Base(files[0]))
}

func TestFileDiscovery_CaseInsensitiveExtensions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "UPPER.MD", "upper")

	cfg := DefaultConfig(root)
	fd, err := NewFileDiscovery(root, cfg.Extensions, cfg.IgnorePatterns)
	require.NoError(t, err)

	files, err := fd.DiscoverFiles()
	require.NoError(t, err)
	require.Len(t, files, 1)
}
