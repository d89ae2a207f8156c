package harvest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// FileDiscovery walks the corpus tree and returns the files eligible for
// extraction: files whose extension is in the allowed set and whose path
// matches no ignore pattern.
type FileDiscovery struct {
	rootDir        string
	extensions     map[string]bool
	ignorePatterns []compiledPattern
}

// NewFileDiscovery creates a file discovery instance. Extensions are
// matched case-insensitively; ignore patterns are glob patterns over
// slash-separated paths relative to rootDir.
func NewFileDiscovery(rootDir string, extensions, ignorePatterns []string) (*FileDiscovery, error) {
	fd := &FileDiscovery{
		rootDir:    rootDir,
		extensions: make(map[string]bool, len(extensions)),
	}

	for _, ext := range extensions {
		fd.extensions[strings.ToLower(ext)] = true
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		fd.ignorePatterns = append(fd.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return fd, nil
}

// DiscoverFiles walks the directory tree and returns eligible files in
// traversal order.
func (fd *FileDiscovery) DiscoverFiles() ([]string, error) {
	files := []string{}

	err := filepath.Walk(fd.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fd.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			// Prune ignored directories so the walk never descends into
			// dependency caches or build output.
			if path != fd.rootDir && fd.shouldIgnore(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if fd.shouldIgnore(relPath) {
			return nil
		}

		if fd.extensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// shouldIgnore checks if a path matches any ignore pattern. Directories
// are also tried with a /** suffix so "node_modules" matches the pattern
// "node_modules/**".
func (fd *FileDiscovery) shouldIgnore(relPath string) bool {
	if fd.matchesAnyIgnore(relPath) {
		return true
	}
	return fd.matchesAnyIgnore(relPath + "/**")
}

func (fd *FileDiscovery) matchesAnyIgnore(path string) bool {
	for _, cp := range fd.ignorePatterns {
		if cp.glob.Match(path) {
			return true
		}
	}
	return false
}
