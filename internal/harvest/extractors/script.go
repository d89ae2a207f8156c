package extractors

import (
	"regexp"
	"strings"
)

// scriptPasses are the three embedding idioms observed in JavaScript and
// TypeScript sources: a bare string literal starting with a diagram
// keyword, a value assigned to a key named "mermaid", and a value assigned
// to a key named "content" that starts with a diagram keyword. Overlapping
// matches across passes are not deduplicated.
var scriptPasses = []*regexp.Regexp{
	regexp.MustCompile(`(?s)` + quotedKeywordBody),
	regexp.MustCompile(`(?s)mermaid:\s*['"` + "`" + `](.*?)['"` + "`" + `]`),
	regexp.MustCompile(`(?s)content:\s*['"` + "`" + `]((?:` + keywordAlternation + `).*?)['"` + "`" + `]`),
}

// escapeReplacer turns the common escape sequences found in source
// literals back into their literal characters.
var escapeReplacer = strings.NewReplacer(`\n`, "\n", `\"`, `"`, `\'`, "'")

// ScriptExtractor finds mermaid snippets embedded as string literals in
// JavaScript/TypeScript-like source text.
type ScriptExtractor struct{}

// NewScriptExtractor creates a new script-source extractor.
func NewScriptExtractor() *ScriptExtractor {
	return &ScriptExtractor{}
}

// Extract runs all three passes over the content, appending candidates to
// one running list. The sequence counter is shared across passes.
func (e *ScriptExtractor) Extract(content, sourceID string) []Candidate {
	c := &collector{content: content, sourceID: sourceID}
	for _, pass := range scriptPasses {
		for _, m := range pass.FindAllStringSubmatchIndex(content, -1) {
			body := strings.TrimSpace(content[m[2]:m[3]])
			body = escapeReplacer.Replace(body)
			c.add(body, m[0])
		}
	}
	return c.out
}
