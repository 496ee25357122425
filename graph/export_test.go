package graph

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestToMermaid(t *testing.T) {
	g := NewGraph()
	g.Append(Node{
		ID:    1,
		Label: "INFRA",
		Edges: []Edge{
			{Signal: "build infra", Ops: []Operation{{Op: OpWrite, Path: "a.txt"}}},
		},
	})

	out := g.ToMermaid()

	if !strings.Contains(out, "graph TD") {
		t.Error("Output should contain 'graph TD'")
	}
	if !strings.Contains(out, "N1[INFRA]") {
		t.Error("Output should contain 'N1[INFRA]'")
	}
	if !strings.Contains(out, "build infra") {
		t.Error("Output should contain the edge signal")
	}
	if !strings.Contains(out, "1 ops") {
		t.Error("Output should contain the op count")
	}
}

func TestToJSON(t *testing.T) {
	g := NewGraph()
	g.Append(Node{ID: 7, Label: "X", Edges: []Edge{{Signal: "go", Response: "gone"}}})

	data, err := g.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded Graph
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(decoded.Nodes) != 1 || decoded.Nodes[0].ID != 7 {
		t.Error("JSON round-trip lost node data")
	}
}
