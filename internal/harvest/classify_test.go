package harvest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for Classify:
// - Every documented leading keyword routes to its diagram type
// - flowchart/graph require a trailing whitespace character
// - Unrecognized prefixes, empty text, and bare keywords route to misc
// - Classification is case-insensitive and ignores leading whitespace
// - Classification is deterministic across repeated calls

func TestClassify_KnownTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want DiagramType
	}{
		{"flowchart TD\nA-->B", TypeFlowchart},
		{"graph LR\nA-->B", TypeFlowchart},
		{"sequenceDiagram\nA->>B: hi", TypeSequence},
		{"gantt\ntitle Plan", TypeGantt},
		{"classDiagram\nAnimal <|-- Duck", TypeClass},
		{"stateDiagram-v2\n[*] --> Still", TypeState},
		{"pie title Pets", TypePie},
		{"gitGraph:\ncommit", TypeGit},
		{"journey\ntitle My day", TypeJourney},
		{"C4Context\ntitle System", TypeC4},
		{"C4Deployment\ntitle Deploy", TypeC4},
		{"erDiagram\nCUSTOMER ||--o{ ORDER : places", TypeER},
		{"architecture-beta\ngroup api", TypeArchitecture},
		{"timeline\ntitle History", TypeTimeline},
		{"kanban\n  Todo", TypeKanban},
		{"radar-beta\naxis a", TypeRadar},
		{"treemap-beta\n\"Root\"", TypeTreemap},
		{"sankey-beta\na,b,10", TypeSankey},
		{"quadrantChart\ntitle Reach", TypeQuadrant},
		{"xychart-beta\ntitle Sales", TypeXY},
		{"packet-beta\n0-15: \"Source\"", TypePacket},
		{"requirementDiagram\nrequirement r {}", TypeRequirement},
		{"block-beta\ncolumns 3", TypeBlock},
		{"mindmap\n  root((a))", TypeMindmap},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.code), "code: %q", tt.code)
	}
}

func TestClassify_Misc(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TypeMisc, Classify(""))
	assert.Equal(t, TypeMisc, Classify("hello world"))
	// graph/flowchart anchors demand trailing whitespace, so lookalike
	// prefixes fall through.
	assert.Equal(t, TypeMisc, Classify("graphql { user }"))
	assert.Equal(t, TypeMisc, Classify("flowchart"))
}

func TestClassify_NormalizesInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TypeSequence, Classify("  SEQUENCEDIAGRAM\nA->>B: hi"))
	assert.Equal(t, TypeFlowchart, Classify("\n\tgraph TD\nA-->B"))
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	inputs := []string{"pie title X", "nonsense", "", "flowchart LR\nA-->B"}
	for _, in := range inputs {
		assert.Equal(t, Classify(in), Classify(in))
	}
}
