// Package ops interprets declarative graph operations.
package ops

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/erikhoward/nstar/graph"
)

// Outcome reports the result of one operation.
type Outcome struct {
	Op     graph.OpKind
	Detail string
	Err    error
}

// String renders the outcome for operator-facing summaries.
func (o Outcome) String() string {
	if o.Err != nil {
		return fmt.Sprintf("%s failed: %v", o.Op, o.Err)
	}
	return fmt.Sprintf("%s: %s", o.Op, o.Detail)
}

// Runner executes operations. Execution is best-effort: each failure is
// caught at the per-operation boundary and reported in its Outcome, and
// never blocks the operations that follow.
type Runner struct {
	log *zap.SugaredLogger
}

// NewRunner creates a runner.
func NewRunner(log *zap.SugaredLogger) *Runner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Runner{log: log}
}

// RunAll executes operations sequentially in listed order. No operation
// observes the outcome of a prior one.
func (r *Runner) RunAll(ctx context.Context, operations []graph.Operation) []Outcome {
	outcomes := make([]Outcome, 0, len(operations))
	for _, op := range operations {
		out := r.Run(ctx, op)
		if out.Err != nil {
			r.log.Warnw("operation failed", "op", op.Op, "error", out.Err)
		} else {
			r.log.Infow("operation done", "op", op.Op, "detail", out.Detail)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// Run executes a single operation. The kind switch is exhaustive over
// the closed variant; an unknown kind is a reported error, not a silent
// skip.
func (r *Runner) Run(ctx context.Context, op graph.Operation) Outcome {
	switch op.Op {
	case graph.OpWrite:
		return r.write(op)
	case graph.OpExec:
		return r.exec(ctx, op)
	default:
		return Outcome{Op: op.Op, Err: fmt.Errorf("%w: %q", graph.ErrUnknownOp, op.Op)}
	}
}

// write creates or truncates the file at op.Path and writes op.Content
// verbatim, creating parent directories as needed. One full-file
// overwrite; no append mode, no partial-write recovery.
func (r *Runner) write(op graph.Operation) Outcome {
	if op.Path == "" {
		return Outcome{Op: op.Op, Err: fmt.Errorf("write op missing path")}
	}

	if dir := filepath.Dir(op.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Outcome{Op: op.Op, Err: fmt.Errorf("failed to create %s: %w", dir, err)}
		}
	}

	if err := os.WriteFile(op.Path, []byte(op.Content), 0644); err != nil {
		return Outcome{Op: op.Op, Err: fmt.Errorf("failed to write %s: %w", op.Path, err)}
	}

	return Outcome{Op: op.Op, Detail: fmt.Sprintf("wrote %d bytes to %s", len(op.Content), op.Path)}
}

// exec spawns op.Cmd as a foreground child process with the caller's
// standard streams and blocks until it exits. The exit status is
// observed but never alters dispatch control flow. There is no timeout:
// a hung child hangs the kernel until the context is cancelled.
func (r *Runner) exec(ctx context.Context, op graph.Operation) Outcome {
	if op.Cmd == "" {
		return Outcome{Op: op.Op, Err: fmt.Errorf("exec op missing cmd")}
	}

	cmd := exec.CommandContext(ctx, op.Cmd, op.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return Outcome{Op: op.Op, Err: fmt.Errorf("%s exited with error: %w", op.Cmd, err)}
	}

	return Outcome{Op: op.Op, Detail: fmt.Sprintf("ran %s (exit 0)", op.Cmd)}
}
