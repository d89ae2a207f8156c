package extractors

import "regexp"

// fencedBlock matches a fenced code block explicitly tagged as mermaid.
// The body between the fences is the first capture group.
var fencedBlock = regexp.MustCompile("(?s)```mermaid\n(.*?)\n```")

// MarkdownExtractor finds mermaid snippets in markdown documents.
type MarkdownExtractor struct{}

// NewMarkdownExtractor creates a new markdown extractor.
func NewMarkdownExtractor() *MarkdownExtractor {
	return &MarkdownExtractor{}
}

// Extract returns the body of every ```mermaid fenced block in document
// order.
func (e *MarkdownExtractor) Extract(content, sourceID string) []Candidate {
	c := &collector{content: content, sourceID: sourceID}
	for _, m := range fencedBlock.FindAllStringSubmatchIndex(content, -1) {
		c.add(content[m[2]:m[3]], m[0])
	}
	return c.out
}
