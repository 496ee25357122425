package graph

import (
	"errors"
	"testing"
)

func TestNewGraph(t *testing.T) {
	g := NewGraph()

	if g == nil {
		t.Fatal("NewGraph() returned nil")
	}
	if g.Nodes == nil {
		t.Error("Nodes slice is nil")
	}
	if len(g.Nodes) != 0 {
		t.Errorf("len(Nodes) = %d, want 0", len(g.Nodes))
	}
}

func TestGraphAppendAndHasNode(t *testing.T) {
	g := NewGraph()

	if g.HasNode(42) {
		t.Error("HasNode(42) = true on empty graph")
	}

	g.Append(Node{ID: 42, Label: "TEST"})

	if !g.HasNode(42) {
		t.Error("HasNode(42) = false after Append")
	}
	if g.HasNode(43) {
		t.Error("HasNode(43) = true, node never added")
	}
	if len(g.Nodes) != 1 {
		t.Errorf("len(Nodes) = %d, want 1", len(g.Nodes))
	}
}

func TestGraphAppendPreservesOrder(t *testing.T) {
	g := NewGraph()
	g.Append(Node{ID: 3, Label: "first"})
	g.Append(Node{ID: 1, Label: "second"})
	g.Append(Node{ID: 2, Label: "third"})

	want := []int{3, 1, 2}
	for i, id := range want {
		if g.Nodes[i].ID != id {
			t.Errorf("Nodes[%d].ID = %d, want %d", i, g.Nodes[i].ID, id)
		}
	}
}

func TestOperationValidateWrite(t *testing.T) {
	op := Operation{Op: OpWrite, Path: "out/a.txt", Content: "hi"}
	if err := op.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestOperationValidateExec(t *testing.T) {
	op := Operation{Op: OpExec, Cmd: "echo", Args: []string{"hi"}}
	if err := op.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestOperationValidateMixed(t *testing.T) {
	op := Operation{Op: OpWrite, Path: "a.txt", Cmd: "echo"}
	if !errors.Is(op.Validate(), ErrMixedOp) {
		t.Error("write op with cmd should return ErrMixedOp")
	}

	op = Operation{Op: OpExec, Cmd: "echo", Content: "hi"}
	if !errors.Is(op.Validate(), ErrMixedOp) {
		t.Error("exec op with content should return ErrMixedOp")
	}
}

func TestOperationValidateUnknownKind(t *testing.T) {
	op := Operation{Op: "teleport"}
	if !errors.Is(op.Validate(), ErrUnknownOp) {
		t.Error("unknown kind should return ErrUnknownOp")
	}
}

func TestGraphValidate(t *testing.T) {
	g := NewGraph()
	g.Append(Node{
		ID:    1,
		Label: "OK",
		Edges: []Edge{
			{Signal: "go", Ops: []Operation{{Op: OpWrite, Path: "a.txt"}}},
		},
	})

	if err := g.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	g.Append(Node{
		ID:    2,
		Label: "BAD",
		Edges: []Edge{
			{Signal: "boom", Ops: []Operation{{Op: "teleport"}}},
		},
	})

	if !errors.Is(g.Validate(), ErrUnknownOp) {
		t.Error("graph with unknown op kind should fail validation")
	}
}
