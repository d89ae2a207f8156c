package extractors

import (
	"regexp"
	"strings"
)

var (
	// mermaidContainer matches rendering container elements, e.g.
	// <div class="mermaid">graph TD; A-->B;</div>.
	mermaidContainer = regexp.MustCompile(`(?is)<div[^>]*class="mermaid"[^>]*>(.*?)</div>`)

	// htmlInlineLiteral matches quoted string literals that begin with a
	// diagram keyword, typically feeding a render call in an inline script.
	htmlInlineLiteral = regexp.MustCompile(`(?s)(?:var\s+\w+\s*=\s*|const\s+\w+\s*=\s*)?` + quotedKeywordBody)

	entityReplacer = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// HTMLExtractor finds mermaid snippets in HTML documents. Diagrams appear
// either as live rendering containers or as pre-serialized strings handed
// to a render call, so two independent passes cover both.
type HTMLExtractor struct{}

// NewHTMLExtractor creates a new HTML extractor.
func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract runs both passes over the content and concatenates the results.
// The sequence counter runs across both passes without resetting.
func (e *HTMLExtractor) Extract(content, sourceID string) []Candidate {
	c := &collector{content: content, sourceID: sourceID}

	// Pass 1: container elements. Container bodies are display markup, so
	// whitespace runs collapse to a single space and the common character
	// entities are decoded.
	for _, m := range mermaidContainer.FindAllStringSubmatchIndex(content, -1) {
		body := strings.TrimSpace(content[m[2]:m[3]])
		body = whitespaceRun.ReplaceAllString(body, " ")
		body = entityReplacer.Replace(body)
		c.add(body, m[0])
	}

	// Pass 2: inline string literals, used verbatim.
	for _, m := range htmlInlineLiteral.FindAllStringSubmatchIndex(content, -1) {
		c.add(content[m[2]:m[3]], m[0])
	}

	return c.out
}
