package extractors

import "strings"

// diagramKeywords are the leading tokens that identify a string literal as
// mermaid text. The list is closed; anything else is left for the
// format-specific container patterns to catch.
var diagramKeywords = []string{
	"graph",
	"flowchart",
	"sequenceDiagram",
	"gantt",
	"classDiagram",
	"stateDiagram",
	"pie",
	"gitGraph",
	"journey",
	"C4Context",
	"C4Container",
	"C4Component",
	"C4Dynamic",
	"C4Deployment",
	"erDiagram",
	"architecture",
	"timeline",
	"kanban",
	"radar",
	"treemap",
	"sankey",
	"quadrant",
	"xychart",
	"packet",
	"requirement",
	"block",
	"mindmap",
}

// keywordAlternation is the keyword list as a regex alternation, for
// embedding in the literal-matching patterns.
var keywordAlternation = strings.Join(diagramKeywords, "|")

// quotedKeywordBody matches a single-, double-, or backtick-quoted string
// literal whose body begins with a diagram keyword, capturing the body.
var quotedKeywordBody = `['"` + "`" + `]((?:` + keywordAlternation + `).*?)['"` + "`" + `]`
