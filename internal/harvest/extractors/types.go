package extractors

import (
	"fmt"
	"strings"
)

// Candidate is a located, not-yet-classified mermaid snippet.
type Candidate struct {
	// Code is the raw snippet text with surrounding whitespace trimmed.
	Code string

	// SourceLocator identifies the originating file and the 1-based line
	// at which the match begins, formatted as "<path>:L<line>".
	SourceLocator string

	// SequenceIndex is the 0-based ordinal of this candidate within its
	// source file, in discovery order.
	SequenceIndex int
}

// Extractor locates mermaid snippets embedded in one input format.
// Implementations are pure: same content in, same candidates out.
type Extractor interface {
	// Extract returns every candidate found in content, in document order.
	Extract(content, sourceID string) []Candidate
}

// collector accumulates candidates for one source file. Whitespace-only
// matches are dropped before a sequence index is assigned, so indexes are
// gapless in discovery order.
type collector struct {
	content  string
	sourceID string
	out      []Candidate
}

// add records one match. offset is the byte offset of the match start in
// the original content, used to compute the 1-based line number.
func (c *collector) add(code string, offset int) {
	code = strings.TrimSpace(code)
	if code == "" {
		return
	}
	line := strings.Count(c.content[:offset], "\n") + 1
	c.out = append(c.out, Candidate{
		Code:          code,
		SourceLocator: fmt.Sprintf("%s:L%d", c.sourceID, line),
		SequenceIndex: len(c.out),
	})
}
