package cli

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/mvp-joe/mermaid-corpus/internal/harvest"
)

// progressCadence is how many files pass between running-total updates.
const progressCadence = 50

// CLIProgressReporter implements progress reporting with a progress bar.
type CLIProgressReporter struct {
	quiet     bool
	fileBar   *progressbar.ProgressBar
	startTime time.Time
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{
		quiet:     quiet,
		startTime: time.Now(),
	}
}

func (c *CLIProgressReporter) OnDiscoveryStart() {
	if c.quiet {
		return
	}
	log.Println("Discovering corpus files...")
}

func (c *CLIProgressReporter) OnDiscoveryComplete(totalFiles int) {
	if c.quiet {
		return
	}
	log.Printf("Processing %d files\n", totalFiles)

	c.fileBar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Extracting samples"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (c *CLIProgressReporter) OnFileProcessed(fileName string, processedFiles, totalSamples int) {
	if c.quiet || c.fileBar == nil {
		return
	}
	c.fileBar.Add(1)
	if processedFiles%progressCadence == 0 {
		c.fileBar.Describe(fmt.Sprintf("Extracting samples (%d so far)", totalSamples))
	}
}

func (c *CLIProgressReporter) OnComplete(stats *harvest.RunStats) {
	if c.quiet {
		return
	}

	fmt.Println()
	color.Green("✓ Extraction complete: %d samples from %d files in %.1fs",
		stats.SamplesWritten, stats.FilesProcessed, stats.ProcessingTimeSeconds)

	if len(stats.SamplesByType) == 0 {
		return
	}

	types := make([]string, 0, len(stats.SamplesByType))
	for t := range stats.SamplesByType {
		types = append(types, string(t))
	}
	sort.Strings(types)

	fmt.Println("\nSamples by type:")
	for _, t := range types {
		fmt.Printf("  %s: %d samples\n", t, stats.SamplesByType[harvest.DiagramType(t)])
	}
}
