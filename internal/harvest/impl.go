package harvest

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mvp-joe/mermaid-corpus/internal/harvest/extractors"
)

// harvester implements the Harvester interface.
type harvester struct {
	config     *Config
	discovery  *FileDiscovery
	writer     *SampleWriter
	progress   ProgressReporter
	extractors map[string]extractors.Extractor // keyed by lowercase extension
}

// New creates a new harvester instance.
func New(config *Config) (Harvester, error) {
	return NewWithProgress(config, &NoOpProgressReporter{})
}

// NewWithProgress creates a new harvester instance with a custom progress
// reporter.
func NewWithProgress(config *Config, progress ProgressReporter) (Harvester, error) {
	discovery, err := NewFileDiscovery(config.CorpusDir, config.Extensions, config.IgnorePatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to create file discovery: %w", err)
	}

	if progress == nil {
		progress = &NoOpProgressReporter{}
	}

	markdown := extractors.NewMarkdownExtractor()
	html := extractors.NewHTMLExtractor()
	script := extractors.NewScriptExtractor()
	direct := extractors.NewDirectExtractor()

	return &harvester{
		config:    config,
		discovery: discovery,
		writer:    NewSampleWriter(config.OutputDir),
		progress:  progress,
		extractors: map[string]extractors.Extractor{
			".md":       markdown,
			".markdown": markdown,
			".html":     html,
			".htm":      html,
			".js":       script,
			".ts":       script,
			".jsx":      script,
			".tsx":      script,
			".mermaid":  direct,
		},
	}, nil
}

// Run walks the corpus, extracts and classifies every snippet, and writes
// one sample per snippet. Per-file failures are logged and skipped; only a
// missing corpus root or a failed walk abort the run.
func (h *harvester) Run(ctx context.Context) (*RunStats, error) {
	start := time.Now()

	if info, err := os.Stat(h.config.CorpusDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("corpus directory not found: %s", h.config.CorpusDir)
	}

	h.progress.OnDiscoveryStart()
	files, err := h.discovery.DiscoverFiles()
	if err != nil {
		return nil, fmt.Errorf("file discovery failed: %w", err)
	}
	h.progress.OnDiscoveryComplete(len(files))

	stats := &RunStats{SamplesByType: make(map[DiagramType]int)}
	for _, path := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		h.processFile(path, stats)
		stats.FilesProcessed++
		h.progress.OnFileProcessed(path, stats.FilesProcessed, stats.SamplesWritten)
	}

	stats.ProcessingTimeSeconds = time.Since(start).Seconds()
	h.progress.OnComplete(stats)
	return stats, nil
}

// processFile extracts, classifies, and persists every snippet in one
// file. A write failure abandons the rest of the file but not the walk.
func (h *harvester) processFile(path string, stats *RunStats) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("warning: skipping unreadable file %s: %v", path, err)
		return
	}
	if !isTextContent(data) {
		log.Printf("warning: skipping non-text file %s", path)
		return
	}

	extractor := h.extractors[strings.ToLower(filepath.Ext(path))]
	if extractor == nil {
		return
	}

	for _, candidate := range extractor.Extract(string(data), filepath.ToSlash(path)) {
		diagramType := Classify(candidate.Code)
		if _, err := h.writer.Write(candidate.Code, diagramType, candidate.SourceLocator, candidate.SequenceIndex); err != nil {
			log.Printf("error: failed to write sample from %s: %v", candidate.SourceLocator, err)
			return
		}
		stats.SamplesWritten++
		stats.SamplesByType[diagramType]++
	}
}

// isTextContent reports whether data looks like text by checking the first
// 512 bytes for null bytes. This is the same heuristic used by tools like
// 'file'.
func isTextContent(data []byte) bool {
	n := len(data)
	if n > 512 {
		n = 512
	}
	for i := 0; i < n; i++ {
		if data[i] == 0 {
			return false
		}
	}
	return true
}
