package domain

import (
	"slices"
	"strings"
)

// BuildGraph is the outdatedness graph of one resolve call: a mapping from
// rule identity to the set of its outdated predecessors. Only rules that
// must run appear as nodes. The graph is transient; it is built per
// invocation and discarded after execution or after answering a query.
type BuildGraph struct {
	preds map[InternedString]map[InternedString]struct{}
}

// NewBuildGraph returns an empty graph.
func NewBuildGraph() *BuildGraph {
	return &BuildGraph{preds: make(map[InternedString]map[InternedString]struct{})}
}

// Add inserts id as a node with no predecessors if not yet present.
func (g *BuildGraph) Add(id InternedString) {
	if _, ok := g.preds[id]; !ok {
		g.preds[id] = make(map[InternedString]struct{})
	}
}

// AddEdge records pred as an outdated predecessor of id, inserting both
// nodes as needed.
func (g *BuildGraph) AddEdge(id, pred InternedString) {
	g.Add(id)
	g.Add(pred)
	g.preds[id][pred] = struct{}{}
}

// Has reports whether id is a node of the graph, i.e. whether its rule
// must run.
func (g *BuildGraph) Has(id InternedString) bool {
	_, ok := g.preds[id]
	return ok
}

// IsEmpty reports whether nothing must run: the requested target is up to
// date.
func (g *BuildGraph) IsEmpty() bool { return len(g.preds) == 0 }

// Len returns the number of rules that must run.
func (g *BuildGraph) Len() int { return len(g.preds) }

// IDs returns the node identities sorted by their string form, for
// deterministic iteration.
func (g *BuildGraph) IDs() []InternedString {
	ids := make([]InternedString, 0, len(g.preds))
	for id := range g.preds {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b InternedString) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}

// Predecessors returns the outdated predecessors of id, sorted by their
// string form.
func (g *BuildGraph) Predecessors(id InternedString) []InternedString {
	set, ok := g.preds[id]
	if !ok {
		return nil
	}
	out := make([]InternedString, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b InternedString) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}
