package harvest

import "context"

// Harvester provides the main interface for corpus extraction runs.
type Harvester interface {
	// Run processes every eligible file under the corpus root, persisting
	// one sample file per extracted snippet. Returns statistics about the
	// run.
	Run(ctx context.Context) (*RunStats, error)
}

// Config contains configuration for the harvester.
type Config struct {
	// CorpusDir is the root of the source tree to scan.
	CorpusDir string

	// OutputDir is the root of the sample tree to write.
	OutputDir string

	// Extensions is the set of file extensions eligible for extraction.
	Extensions []string

	// IgnorePatterns are glob patterns for paths excluded from the scan.
	IgnorePatterns []string
}

// DefaultConfig returns a configuration with sensible defaults for a
// checkout of the mermaid repository.
func DefaultConfig(corpusDir string) *Config {
	return &Config{
		CorpusDir: corpusDir,
		OutputDir: "mermaid-samples",
		Extensions: []string{
			".md",
			".markdown",
			".html",
			".htm",
			".js",
			".ts",
			".jsx",
			".tsx",
			".mermaid",
		},
		IgnorePatterns: []string{
			"node_modules/**",
			"**/node_modules/**",
			".git/**",
			"**/.git/**",
			"dist/**",
			"**/dist/**",
			"build/**",
			"**/build/**",
		},
	}
}
