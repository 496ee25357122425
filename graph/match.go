package graph

import "strings"

// Match finds the first edge whose signal occurs as a substring of the
// input signal, case-insensitively. Nodes are scanned in graph order and
// edges in declared order; the first hit wins. When two edges could both
// match, declaration order is the tie-break — a designed contract, not
// an accident.
//
// Returns the matched node and edge, or ok=false when no edge across the
// whole graph matches (the fallback router handles that case).
func (g *Graph) Match(signal string) (*Node, *Edge, bool) {
	signal = strings.ToLower(signal)

	for i := range g.Nodes {
		n := &g.Nodes[i]
		for j := range n.Edges {
			e := &n.Edges[j]
			if strings.Contains(signal, strings.ToLower(e.Signal)) {
				return n, e, true
			}
		}
	}
	return nil, nil, false
}
