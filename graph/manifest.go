package graph

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Store persists a graph as a YAML manifest at a fixed path.
// The whole graph is written on every save; node and edge order is
// preserved so manifest diffs stay meaningful.
type Store struct {
	path string
	log  *zap.SugaredLogger
}

// NewStore creates a store for the manifest at path.
func NewStore(path string, log *zap.SugaredLogger) *Store {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Store{path: path, log: log}
}

// Path returns the manifest path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the manifest and returns the graph.
// A missing or unparsable manifest is not an error: Load warns and
// returns an empty graph. This is the sole recovery policy for corrupt
// storage — dispatch degrades to fallback-only rather than failing.
func (s *Store) Load() *Graph {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Warnw("manifest not readable, starting with empty graph",
			"path", s.path, "error", err)
		return NewGraph()
	}

	var g Graph
	if err := yaml.Unmarshal(data, &g); err != nil {
		s.log.Warnw("manifest not parsable, starting with empty graph",
			"path", s.path, "error", err)
		return NewGraph()
	}

	if g.Nodes == nil {
		g.Nodes = []Node{}
	}
	if err := g.Validate(); err != nil {
		// Advisory: a hand-edited manifest still dispatches, and the
		// interpreter reports the bad operation if it is ever reached.
		s.log.Warnw("manifest has invalid operations", "path", s.path, "error", err)
	}
	s.log.Infow("manifest loaded", "path", s.path, "nodes", len(g.Nodes))
	return &g
}

// Save serializes the full graph to the manifest path, overwriting any
// prior contents. Unlike Load, a save failure propagates: silently
// losing persisted state is unacceptable.
func (s *Store) Save(g *Graph) error {
	data, err := yaml.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create manifest directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	s.log.Infow("manifest saved", "path", s.path, "nodes", len(g.Nodes))
	return nil
}
