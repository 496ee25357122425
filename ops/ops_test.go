package ops

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/erikhoward/nstar/graph"
)

func TestRunWriteCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out", "nested", "a.txt")

	out := NewRunner(nil).Run(context.Background(), graph.Operation{
		Op:      graph.OpWrite,
		Path:    path,
		Content: "hi",
	})
	if out.Err != nil {
		t.Fatalf("Run() error = %v", out.Err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if string(data) != "hi" {
		t.Errorf("file contents = %q, want 'hi'", data)
	}
}

func TestRunWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("old contents that are longer"), 0644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	out := NewRunner(nil).Run(context.Background(), graph.Operation{
		Op:      graph.OpWrite,
		Path:    path,
		Content: "new",
	})
	if out.Err != nil {
		t.Fatalf("Run() error = %v", out.Err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("file contents = %q, want full replacement with 'new'", data)
	}
}

func TestRunWriteMissingPath(t *testing.T) {
	out := NewRunner(nil).Run(context.Background(), graph.Operation{Op: graph.OpWrite})
	if out.Err == nil {
		t.Error("write op without path should report error")
	}
}

func TestRunExec(t *testing.T) {
	out := NewRunner(nil).Run(context.Background(), graph.Operation{
		Op:   graph.OpExec,
		Cmd:  "sh",
		Args: []string{"-c", "exit 0"},
	})
	if out.Err != nil {
		t.Fatalf("Run() error = %v", out.Err)
	}
}

func TestRunExecNonZeroExit(t *testing.T) {
	out := NewRunner(nil).Run(context.Background(), graph.Operation{
		Op:   graph.OpExec,
		Cmd:  "sh",
		Args: []string{"-c", "exit 3"},
	})
	if out.Err == nil {
		t.Error("non-zero exit should be reported in the outcome")
	}
}

func TestRunExecMissingCommand(t *testing.T) {
	out := NewRunner(nil).Run(context.Background(), graph.Operation{
		Op:  graph.OpExec,
		Cmd: "definitely-not-a-command-xyz",
	})
	if out.Err == nil {
		t.Error("missing executable should report error, not panic")
	}
}

func TestRunUnknownKind(t *testing.T) {
	out := NewRunner(nil).Run(context.Background(), graph.Operation{Op: "teleport"})
	if !errors.Is(out.Err, graph.ErrUnknownOp) {
		t.Errorf("error = %v, want ErrUnknownOp", out.Err)
	}
}

func TestRunAllContinuesPastFailure(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "after.txt")

	outcomes := NewRunner(nil).RunAll(context.Background(), []graph.Operation{
		{Op: graph.OpExec, Cmd: "definitely-not-a-command-xyz"},
		{Op: graph.OpWrite, Path: path, Content: "still ran"},
	})

	if len(outcomes) != 2 {
		t.Fatalf("len(outcomes) = %d, want 2", len(outcomes))
	}
	if outcomes[0].Err == nil {
		t.Error("first outcome should carry the failure")
	}
	if outcomes[1].Err != nil {
		t.Errorf("second outcome error = %v, want nil", outcomes[1].Err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("second op should have executed: %v", err)
	}
	if string(data) != "still ran" {
		t.Errorf("file contents = %q, want 'still ran'", data)
	}
}
