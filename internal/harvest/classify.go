package harvest

import (
	"regexp"
	"strings"
)

// DiagramType tags a snippet with the kind of diagram it declares.
type DiagramType string

// The closed set of diagram types. TypeMisc is the catch-all for snippets
// whose leading token is not recognized.
const (
	TypeFlowchart    DiagramType = "flowchart"
	TypeSequence     DiagramType = "sequence"
	TypeGantt        DiagramType = "gantt"
	TypeClass        DiagramType = "class"
	TypeState        DiagramType = "state"
	TypePie          DiagramType = "pie"
	TypeGit          DiagramType = "git"
	TypeJourney      DiagramType = "journey"
	TypeC4           DiagramType = "c4"
	TypeER           DiagramType = "er"
	TypeArchitecture DiagramType = "architecture"
	TypeTimeline     DiagramType = "timeline"
	TypeKanban       DiagramType = "kanban"
	TypeRadar        DiagramType = "radar"
	TypeTreemap      DiagramType = "treemap"
	TypeSankey       DiagramType = "sankey"
	TypeQuadrant     DiagramType = "quadrant"
	TypeXY           DiagramType = "xy"
	TypePacket       DiagramType = "packet"
	TypeRequirement  DiagramType = "requirement"
	TypeBlock        DiagramType = "block"
	TypeMindmap      DiagramType = "mindmap"
	TypeMisc         DiagramType = "misc"
)

// typeAnchor pairs a diagram type with the patterns that identify it.
// Anchors match only at the start of the lowercased, trimmed snippet.
type typeAnchor struct {
	Type    DiagramType
	Anchors []*regexp.Regexp
}

// typeAnchors is ordered: the first entry with a matching anchor wins, so
// the flowchart/graph keywords stay ahead of the looser prefixes.
var typeAnchors = []typeAnchor{
	{TypeFlowchart, anchors(`^flowchart\s`, `^graph\s`)},
	{TypeSequence, anchors(`^sequencediagram`)},
	{TypeGantt, anchors(`^gantt`)},
	{TypeClass, anchors(`^classdiagram`)},
	{TypeState, anchors(`^statediagram`)},
	{TypePie, anchors(`^pie`)},
	{TypeGit, anchors(`^gitgraph`)},
	{TypeJourney, anchors(`^journey`)},
	{TypeC4, anchors(`^c4context`, `^c4container`, `^c4component`, `^c4dynamic`, `^c4deployment`)},
	{TypeER, anchors(`^erdiagram`)},
	{TypeArchitecture, anchors(`^architecture`)},
	{TypeTimeline, anchors(`^timeline`)},
	{TypeKanban, anchors(`^kanban`)},
	{TypeRadar, anchors(`^radar`)},
	{TypeTreemap, anchors(`^treemap`)},
	{TypeSankey, anchors(`^sankey`)},
	{TypeQuadrant, anchors(`^quadrant`)},
	{TypeXY, anchors(`^xychart`)},
	{TypePacket, anchors(`^packet`)},
	{TypeRequirement, anchors(`^requirement`)},
	{TypeBlock, anchors(`^block`)},
	{TypeMindmap, anchors(`^mindmap`)},
}

func anchors(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// Classify returns the diagram type of a snippet. It is total and
// deterministic: every input, including empty text, maps to exactly one
// type, with TypeMisc as the fallback.
func Classify(code string) DiagramType {
	lower := strings.ToLower(strings.TrimSpace(code))
	for _, entry := range typeAnchors {
		for _, anchor := range entry.Anchors {
			if anchor.MatchString(lower) {
				return entry.Type
			}
		}
	}
	return TypeMisc
}
