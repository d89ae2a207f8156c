// Package verify checks the structural health of an extracted sample tree.
// It is a QA collaborator for the extraction engine: every sample must
// carry the Source and Type header lines and at least one non-comment body
// line.
package verify

import (
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// CheckResult describes the structural health of one sample file.
type CheckResult struct {
	HasSource  bool
	HasType    bool
	HasContent bool

	// LineCount is the number of non-comment, non-empty lines.
	LineCount int

	// Err is set when the file could not be read at all.
	Err error
}

// Valid reports whether the sample satisfies the header contract.
func (r CheckResult) Valid() bool {
	return r.Err == nil && r.HasSource && r.HasType && r.HasContent
}

// CheckSample inspects one sample file for the header contract.
func CheckSample(path string) CheckResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return CheckResult{Err: err}
	}

	content := string(data)
	result := CheckResult{
		HasSource: strings.Contains(content, "Source:"),
		HasType:   strings.Contains(content, "Type:"),
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "//") {
			result.LineCount++
		}
	}
	result.HasContent = result.LineCount > 0

	return result
}

// InvalidSample pairs a failing sample path with its check result.
type InvalidSample struct {
	Path   string
	Result CheckResult
}

// Report summarizes a verification run.
type Report struct {
	// TotalFiles is the number of .mermaid files found under the root.
	TotalFiles int

	// SampleSize is the number of files actually checked.
	SampleSize int

	// ValidCount is the number of checked files that passed.
	ValidCount int

	// Invalid lists the checked files that failed.
	Invalid []InvalidSample

	// ByType counts all files per diagram type (the parent directory name).
	ByType map[string]int

	// Examples holds a few sample paths for spot inspection.
	Examples []string
}

// SuccessRate returns the fraction of checked files that passed, in percent.
func (r *Report) SuccessRate() float64 {
	if r.SampleSize == 0 {
		return 0
	}
	return float64(r.ValidCount) / float64(r.SampleSize) * 100
}

// Run checks a random sample of the .mermaid files under outputRoot.
// sampleSize is clamped to the number of files found. An absent root or an
// empty tree is an error: there is nothing to verify.
func Run(outputRoot string, sampleSize int) (*Report, error) {
	if info, err := os.Stat(outputRoot); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("samples directory not found: %s", outputRoot)
	}

	var files []string
	err := filepath.WalkDir(outputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".mermaid" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan samples directory: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .mermaid files found under %s", outputRoot)
	}

	if sampleSize <= 0 || sampleSize > len(files) {
		sampleSize = len(files)
	}

	report := &Report{
		TotalFiles: len(files),
		SampleSize: sampleSize,
		ByType:     make(map[string]int),
	}

	for _, path := range files {
		report.ByType[filepath.Base(filepath.Dir(path))]++
	}

	perm := rand.Perm(len(files))
	for _, i := range perm[:sampleSize] {
		result := CheckSample(files[i])
		if result.Valid() {
			report.ValidCount++
		} else {
			report.Invalid = append(report.Invalid, InvalidSample{Path: files[i], Result: result})
		}
	}

	exampleCount := 3
	if exampleCount > len(files) {
		exampleCount = len(files)
	}
	for _, i := range rand.Perm(len(files))[:exampleCount] {
		report.Examples = append(report.Examples, files[i])
	}

	return report, nil
}
