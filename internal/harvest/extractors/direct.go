package extractors

import "strings"

// DirectExtractor handles files that are themselves mermaid definitions.
// The whole trimmed content is the single candidate.
type DirectExtractor struct{}

// NewDirectExtractor creates a new direct-file extractor.
func NewDirectExtractor() *DirectExtractor {
	return &DirectExtractor{}
}

// Extract returns the trimmed file content as a single candidate at
// sequence index 0, or nothing if the file is blank.
func (e *DirectExtractor) Extract(content, sourceID string) []Candidate {
	code := strings.TrimSpace(content)
	if code == "" {
		return nil
	}
	return []Candidate{{
		Code:          code,
		SourceLocator: sourceID + ":L1",
		SequenceIndex: 0,
	}}
}
