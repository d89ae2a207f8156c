package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/mermaid-corpus/internal/config"
	"github.com/mvp-joe/mermaid-corpus/internal/harvest"
)

var (
	extractCorpusFlag string
	extractOutputFlag string
	extractQuietFlag  bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract Mermaid samples from a source corpus",
	Long: `Extract scans a directory tree for embedded Mermaid diagram snippets and
saves each one as a standalone annotated .mermaid file.

The extractor:
  - Finds fenced mermaid blocks in markdown files
  - Finds mermaid containers and inline literals in HTML files
  - Finds mermaid string literals in JavaScript/TypeScript sources
  - Takes standalone .mermaid files whole
  - Classifies every snippet and writes it under <output>/<type>/

Examples:
  # Extract from the default corpus directory (./mermaid)
  mermaid-corpus extract

  # Extract from a specific checkout into a custom output tree
  mermaid-corpus extract --corpus /path/to/mermaid --output ./samples

  # Extract without progress output
  mermaid-corpus extract --quiet
`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractCorpusFlag, "corpus", "c", "", "Corpus directory to scan (default from config)")
	extractCmd.Flags().StringVarP(&extractOutputFlag, "output", "o", "", "Output directory for samples (default from config)")
	extractCmd.Flags().BoolVarP(&extractQuietFlag, "quiet", "q", false, "Disable progress and summary output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling extraction...")
		cancel()
	}()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	harvestConfig := harvest.DefaultConfig(cfg.Corpus.Dir)
	harvestConfig.OutputDir = cfg.Output.Dir
	if len(cfg.Corpus.Ignore) > 0 {
		harvestConfig.IgnorePatterns = cfg.Corpus.Ignore
	}
	if extractCorpusFlag != "" {
		harvestConfig.CorpusDir = extractCorpusFlag
	}
	if extractOutputFlag != "" {
		harvestConfig.OutputDir = extractOutputFlag
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Corpus: %s\nOutput: %s\n", harvestConfig.CorpusDir, harvestConfig.OutputDir)
	}

	progress := NewCLIProgressReporter(extractQuietFlag)

	h, err := harvest.NewWithProgress(harvestConfig, progress)
	if err != nil {
		return fmt.Errorf("failed to create harvester: %w", err)
	}

	if _, err := h.Run(ctx); err != nil {
		return err
	}
	return nil
}
