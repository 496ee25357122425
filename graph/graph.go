// Package graph provides the intent graph data model and manifest storage.
package graph

import (
	"errors"
	"fmt"
)

// Graph validation errors.
var (
	ErrUnknownOp = errors.New("unknown operation kind")
	ErrMixedOp   = errors.New("operation carries fields of another kind")
)

// OpKind identifies an operation variant.
// The set of kinds is closed: write and exec.
type OpKind string

const (
	// OpWrite writes a file, overwriting any existing contents.
	OpWrite OpKind = "write"

	// OpExec spawns a child process and blocks until it exits.
	OpExec OpKind = "exec"
)

// Graph is the root aggregate: an ordered sequence of nodes.
// Node order is significant — matching is first-match-wins.
type Graph struct {
	Nodes []Node `yaml:"nodes" json:"nodes"`
}

// Node represents one unit of known behavior.
type Node struct {
	ID       int    `yaml:"id" json:"id"`
	Label    string `yaml:"label" json:"label"`
	Behavior string `yaml:"behavior" json:"behavior"`
	Edges    []Edge `yaml:"edges" json:"edges"`
}

// Edge maps a trigger phrase to a response and an operation sequence.
// Edge order within a node is significant.
type Edge struct {
	Signal   string      `yaml:"signal" json:"signal"`
	Response string      `yaml:"response" json:"response"`
	Ops      []Operation `yaml:"ops" json:"ops"`
}

// Operation is a declarative side-effecting action. It is a tagged variant:
// Op selects the kind, and only that kind's fields may be set.
type Operation struct {
	Op OpKind `yaml:"op" json:"op"`

	// write fields
	Path    string `yaml:"path,omitempty" json:"path,omitempty"`
	Content string `yaml:"content,omitempty" json:"content,omitempty"`

	// exec fields
	Cmd  string   `yaml:"cmd,omitempty" json:"cmd,omitempty"`
	Args []string `yaml:"args,omitempty" json:"args,omitempty"`
}

// NewGraph creates a new empty graph.
func NewGraph() *Graph {
	return &Graph{Nodes: []Node{}}
}

// HasNode reports whether a node with the given ID exists.
// IDs are expected unique but not structurally enforced; the ingestor
// uses this probe to skip duplicates before appending.
func (g *Graph) HasNode(id int) bool {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return true
		}
	}
	return false
}

// Append adds a node to the end of the graph.
// The graph is append-only; there is no deletion path.
func (g *Graph) Append(n Node) {
	g.Nodes = append(g.Nodes, n)
}

// Validate checks every operation in the graph for kind consistency.
// Returns an error if:
// - An operation has an unknown kind
// - A write operation carries exec fields, or an exec operation write fields
//
// Validation is advisory: the store loads unvalidated graphs so that a
// hand-edited manifest still dispatches.
func (g *Graph) Validate() error {
	for _, n := range g.Nodes {
		for _, e := range n.Edges {
			for _, op := range e.Ops {
				if err := op.Validate(); err != nil {
					return fmt.Errorf("node %d edge %q: %w", n.ID, e.Signal, err)
				}
			}
		}
	}
	return nil
}

// Validate checks that the operation's fields match its kind.
func (op Operation) Validate() error {
	switch op.Op {
	case OpWrite:
		if op.Cmd != "" || len(op.Args) > 0 {
			return fmt.Errorf("%w: write op with cmd/args", ErrMixedOp)
		}
	case OpExec:
		if op.Path != "" || op.Content != "" {
			return fmt.Errorf("%w: exec op with path/content", ErrMixedOp)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
	}
	return nil
}
