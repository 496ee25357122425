package graph

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ToMermaid exports the graph to Mermaid diagram syntax.
// Each node is rendered as a box and each of its trigger signals as a
// round node pointing at it, annotated with the operation count.
func (g *Graph) ToMermaid() string {
	var sb strings.Builder

	sb.WriteString("graph TD\n")

	sig := 0
	for _, n := range g.Nodes {
		sb.WriteString(fmt.Sprintf("    N%d[%s]\n", n.ID, n.Label))
		for _, e := range n.Edges {
			sb.WriteString(fmt.Sprintf("    S%d((%q)) -->|%d ops| N%d\n",
				sig, e.Signal, len(e.Ops), n.ID))
			sig++
		}
	}

	return sb.String()
}

// ToJSON exports the graph to JSON format.
func (g *Graph) ToJSON() ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}
