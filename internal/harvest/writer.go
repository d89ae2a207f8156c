package harvest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// generatorComment is the tool-identifying header line written into every
// sample. The verifier only requires the Source and Type lines; this one
// is provenance for humans.
const generatorComment = "// Generated by mermaid-corpus extract"

// SampleWriter persists classified snippets under a type-keyed directory
// tree. Sample identity is (source base name, sequence index), so a rerun
// over an unchanged corpus rewrites identical paths and contents. Existing
// files at the derived path are overwritten without collision detection.
type SampleWriter struct {
	outputRoot string
}

// NewSampleWriter creates a writer rooted at outputRoot. Type directories
// are created on demand.
func NewSampleWriter(outputRoot string) *SampleWriter {
	return &SampleWriter{outputRoot: outputRoot}
}

// Write persists one snippet as
// <outputRoot>/<type>/<sourceBaseName>_<index>.mermaid and returns the
// path. The file holds three comment header lines, a blank line, the
// snippet body, and a trailing newline.
func (w *SampleWriter) Write(code string, diagramType DiagramType, sourceLocator string, sequenceIndex int) (string, error) {
	// The source portion of the locator is everything before the :L<line>
	// suffix. Dots in the base name collapse to underscores so the sample
	// name stays a single flat token.
	source := sourceLocator
	if i := strings.Index(source, ":"); i >= 0 {
		source = source[:i]
	}
	baseName := strings.ReplaceAll(filepath.Base(source), ".", "_")

	dir := filepath.Join(w.outputRoot, string(diagramType))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outPath := filepath.Join(dir, fmt.Sprintf("%s_%03d.mermaid", baseName, sequenceIndex))

	var buf strings.Builder
	fmt.Fprintf(&buf, "// Source: %s\n", sourceLocator)
	fmt.Fprintf(&buf, "// Type: %s\n", diagramType)
	buf.WriteString(generatorComment + "\n\n")
	buf.WriteString(code)
	buf.WriteString("\n")

	if err := os.WriteFile(outPath, []byte(buf.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write sample file: %w", err)
	}

	return outPath, nil
}
