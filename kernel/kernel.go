// Package kernel composes the intent graph dispatch pipeline.
package kernel

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/erikhoward/nstar/graph"
	"github.com/erikhoward/nstar/ops"
	"github.com/erikhoward/nstar/trace"
)

// Kernel owns an in-memory graph for the duration of a session and
// dispatches signals against it. The graph is loaded once from the
// manifest store at construction; the kernel never mutates or persists
// it. Single caller per graph — concurrent kernels over the same
// manifest race on save and must be avoided by the operator.
type Kernel struct {
	graph  *graph.Graph
	runner *ops.Runner
	router *Router
	trace  *trace.Log
	log    *zap.SugaredLogger
}

// Option configures a Kernel.
type Option func(*Kernel)

// WithLogger sets the kernel logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(k *Kernel) {
		if log != nil {
			k.log = log
		}
	}
}

// WithRunner sets the operation runner.
func WithRunner(r *ops.Runner) Option {
	return func(k *Kernel) {
		if r != nil {
			k.runner = r
		}
	}
}

// WithRouter sets the fallback router.
func WithRouter(r *Router) Option {
	return func(k *Kernel) {
		if r != nil {
			k.router = r
		}
	}
}

// WithTrace sets the receipt log. When set, every matched dispatch
// appends a receipt that later history ingestion turns into a memory
// node. Unmatched dispatches never touch the log.
func WithTrace(t *trace.Log) Option {
	return func(k *Kernel) {
		k.trace = t
	}
}

// New creates a kernel over the graph loaded from store.
func New(store *graph.Store, opts ...Option) *Kernel {
	k := &Kernel{
		log: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(k)
	}
	if k.runner == nil {
		k.runner = ops.NewRunner(k.log)
	}
	if k.router == nil {
		k.router = NewRouter(k.log)
	}
	k.graph = store.Load()
	return k
}

// Graph returns the kernel's in-memory graph.
func (k *Kernel) Graph() *graph.Graph {
	return k.graph
}

// Result reports the outcome of one dispatch.
type Result struct {
	Signal   string
	Matched  bool
	NodeID   int
	Label    string
	Response string
	Outcomes []ops.Outcome
}

// OpsSummary renders the executed operations as a single line.
func (r *Result) OpsSummary() string {
	if !r.Matched {
		return "no ops (fallback)"
	}
	if len(r.Outcomes) == 0 {
		return "no ops"
	}
	parts := make([]string, len(r.Outcomes))
	for i, o := range r.Outcomes {
		parts[i] = o.String()
	}
	return fmt.Sprintf("%d ops: %s", len(r.Outcomes), strings.Join(parts, "; "))
}

// Dispatch matches signal against the graph and executes the matched
// edge's operations in order, or routes the signal to the fallback
// router when nothing matches. Operation failures are reported in the
// result but never abort the dispatch.
func (k *Kernel) Dispatch(ctx context.Context, signal string) *Result {
	node, edge, ok := k.graph.Match(signal)
	if !ok {
		ack := k.router.Route(signal)
		return &Result{Signal: signal, Response: ack}
	}

	k.log.Infow("signal matched",
		"signal", signal, "node", node.ID, "label", node.Label)

	res := &Result{
		Signal:   signal,
		Matched:  true,
		NodeID:   node.ID,
		Label:    node.Label,
		Response: edge.Response,
	}
	res.Outcomes = k.runner.RunAll(ctx, edge.Ops)

	if k.trace != nil {
		rec := trace.Record{
			RunID: trace.NewRunID(),
			Task:  signal,
			Best:  edge.Response,
		}
		if err := k.trace.Append(rec); err != nil {
			k.log.Warnw("failed to append receipt", "error", err)
		}
	}

	return res
}
