package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for HTMLExtractor:
// - Extract a mermaid container element body
// - Collapse whitespace runs and decode &lt; &gt; &amp; in container bodies
// - Extract keyword-prefixed string literals from inline scripts
// - Continue the sequence counter across the two passes
// - Match containers case-insensitively and with extra attributes
// - Return nothing for content without mermaid

func TestHTMLExtractor_Container(t *testing.T) {
	t.Parallel()

	e := NewHTMLExtractor()
	content := `<html><body><div class="mermaid">pie title X</div></body></html>`

	candidates := e.Extract(content, "page.html")

	require.Len(t, candidates, 1)
	assert.Equal(t, "pie title X", candidates[0].Code)
	assert.Equal(t, "page.html:L1", candidates[0].SourceLocator)
	assert.Equal(t, 0, candidates[0].SequenceIndex)
}

func TestHTMLExtractor_ContainerCleanup(t *testing.T) {
	t.Parallel()

	e := NewHTMLExtractor()
	content := "<div id=\"d\" class=\"mermaid\">\n  graph TD;\n  A --&gt; B;\n</div>"

	candidates := e.Extract(content, "page.html")

	require.Len(t, candidates, 1)
	assert.Equal(t, "graph TD; A --> B;", candidates[0].Code)
}

func TestHTMLExtractor_InlineLiteral(t *testing.T) {
	t.Parallel()

	e := NewHTMLExtractor()
	content := "<script>\nconst def = 'sequenceDiagram\\nA->>B: hi';\nmermaid.render('id', def);\n</script>"

	candidates := e.Extract(content, "demo.html")

	require.Len(t, candidates, 1)
	// Inline literals are used verbatim; escape sequences stay as written.
	assert.Equal(t, `sequenceDiagram\nA->>B: hi`, candidates[0].Code)
	assert.Equal(t, "demo.html:L2", candidates[0].SourceLocator)
}

func TestHTMLExtractor_CounterRunsAcrossPasses(t *testing.T) {
	t.Parallel()

	e := NewHTMLExtractor()
	content := `<div class="mermaid">pie title X</div>
<script>var g = "gantt";</script>`

	candidates := e.Extract(content, "page.html")

	require.Len(t, candidates, 2)
	assert.Equal(t, "pie title X", candidates[0].Code)
	assert.Equal(t, 0, candidates[0].SequenceIndex)
	assert.Equal(t, "gantt", candidates[1].Code)
	assert.Equal(t, 1, candidates[1].SequenceIndex)
}

func TestHTMLExtractor_NoMermaid(t *testing.T) {
	t.Parallel()

	e := NewHTMLExtractor()
	assert.Empty(t, e.Extract("<div class=\"other\">nothing here</div>", "page.html"))
}
