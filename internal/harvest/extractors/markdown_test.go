package extractors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for MarkdownExtractor:
// - Extract a single fenced mermaid block with trimmed body
// - Report the 1-based line number of the fence start in the locator
// - Extract multiple blocks with gapless sequence indexes
// - Skip whitespace-only blocks without consuming an index
// - Ignore fenced blocks tagged with other languages
// - Return nothing for content without mermaid blocks

func TestMarkdownExtractor_SingleBlock(t *testing.T) {
	t.Parallel()

	e := NewMarkdownExtractor()
	content := strings.Repeat("filler\n", 9) + "```mermaid\nflowchart TD\nA-->B\n```\n"

	candidates := e.Extract(content, "docs/flow.md")

	require.Len(t, candidates, 1)
	assert.Equal(t, "flowchart TD\nA-->B", candidates[0].Code)
	assert.Equal(t, "docs/flow.md:L10", candidates[0].SourceLocator)
	assert.Equal(t, 0, candidates[0].SequenceIndex)
}

func TestMarkdownExtractor_MultipleBlocks(t *testing.T) {
	t.Parallel()

	e := NewMarkdownExtractor()
	content := "```mermaid\npie title Pets\n```\n\ntext\n\n```mermaid\ngantt\ntitle Plan\n```\n"

	candidates := e.Extract(content, "README.md")

	require.Len(t, candidates, 2)
	assert.Equal(t, "pie title Pets", candidates[0].Code)
	assert.Equal(t, 0, candidates[0].SequenceIndex)
	assert.Equal(t, "README.md:L1", candidates[0].SourceLocator)
	assert.Equal(t, "gantt\ntitle Plan", candidates[1].Code)
	assert.Equal(t, 1, candidates[1].SequenceIndex)
	assert.Equal(t, "README.md:L7", candidates[1].SourceLocator)
}

func TestMarkdownExtractor_SkipsBlankBlock(t *testing.T) {
	t.Parallel()

	e := NewMarkdownExtractor()
	content := "```mermaid\n   \n```\n\n```mermaid\njourney\ntitle Day\n```\n"

	candidates := e.Extract(content, "doc.md")

	// The blank block is discarded before an index is assigned, so the
	// surviving block starts at index 0.
	require.Len(t, candidates, 1)
	assert.Equal(t, "journey\ntitle Day", candidates[0].Code)
	assert.Equal(t, 0, candidates[0].SequenceIndex)
}

func TestMarkdownExtractor_IgnoresOtherFences(t *testing.T) {
	t.Parallel()

	e := NewMarkdownExtractor()
	content := "```go\nfunc main() {}\n```\n\nplain text\n"

	assert.Empty(t, e.Extract(content, "doc.md"))
}
