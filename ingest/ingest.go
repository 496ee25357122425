// Package ingest grows the intent graph from execution history and
// available capabilities.
package ingest

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"go.uber.org/zap"

	"github.com/erikhoward/nstar/graph"
	"github.com/erikhoward/nstar/trace"
)

// Node ID bands. Memory nodes and capability nodes occupy disjoint
// numeric namespaces so derived IDs never cross classes.
const (
	MemoryBand     = 2000
	CapabilityBand = 3000
	bandWidth      = 1000
)

// DeriveID hashes key into the given band using FNV-1a. The band is
// narrow, so distinct keys can collide; a colliding key is treated as a
// duplicate and skipped by the ingestion passes, with the skip logged.
// Collisions drop knowledge but never corrupt the graph.
func DeriveID(key string, band int) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32())%bandWidth + band
}

// Ingestor appends derived nodes to an in-memory graph. Both passes are
// append-only and idempotent by derived ID; the caller persists the
// graph through the manifest store afterward.
type Ingestor struct {
	log *zap.SugaredLogger
}

// New creates an ingestor.
func New(log *zap.SugaredLogger) *Ingestor {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Ingestor{log: log}
}

// History turns past run records into memory nodes. Each record becomes
// a node whose single edge recalls the original task and an excerpt of
// its result; recall is read-only, so the edge carries no ops. Records
// whose derived ID already exists are skipped. Returns the number of
// nodes appended.
func (i *Ingestor) History(g *graph.Graph, records []trace.Record) int {
	added := 0
	for _, rec := range records {
		id := DeriveID(rec.RunID, MemoryBand)
		if g.HasNode(id) {
			i.log.Debugw("memory node already present, skipping",
				"run_id", rec.RunID, "id", id)
			continue
		}

		short := truncate(rec.RunID, 6)
		g.Append(graph.Node{
			ID:       id,
			Label:    "MEM_" + short,
			Behavior: "Recall: " + rec.Task,
			Edges: []graph.Edge{
				{
					Signal: "recall " + short,
					Response: fmt.Sprintf("I remember doing '%s'. Result was: %s...",
						rec.Task, truncate(rec.Best, 50)),
				},
			},
		})
		added++
	}

	i.log.Infow("history ingested", "records", len(records), "added", added)
	return added
}

// Capabilities turns script files under dir into capability nodes. Each
// matching file becomes a node whose single edge triggers on
// "run <filename>" and carries one exec op invoking the script with no
// arguments. Files whose derived ID already exists are skipped. The
// pattern is a glob over file names (e.g. "*.py"); an empty pattern
// matches everything.
func (i *Ingestor) Capabilities(g *graph.Graph, dir, pattern string) (int, error) {
	if pattern == "" {
		pattern = "*"
	}
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("bad capability pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to scan capability directory: %w", err)
	}

	added := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !matcher.Match(name) {
			continue
		}

		id := DeriveID(name, CapabilityBand)
		if g.HasNode(id) {
			i.log.Debugw("capability node already present, skipping",
				"script", name, "id", id)
			continue
		}

		label := strings.TrimSuffix(name, filepath.Ext(name))
		g.Append(graph.Node{
			ID:       id,
			Label:    "TOOL_" + strings.ToUpper(label),
			Behavior: "Executes " + name,
			Edges: []graph.Edge{
				{
					Signal:   "run " + name,
					Response: fmt.Sprintf("Executing capability %s...", name),
					Ops: []graph.Operation{
						{Op: graph.OpExec, Cmd: filepath.Join(dir, name)},
					},
				},
			},
		})
		added++
	}

	i.log.Infow("capabilities ingested", "dir", dir, "added", added)
	return added, nil
}

// truncate returns at most n leading runes of s, never splitting a
// multi-byte character.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
