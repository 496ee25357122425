package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erikhoward/nstar/graph"
	"github.com/erikhoward/nstar/ingest"
	"github.com/erikhoward/nstar/trace"
)

var (
	ingestScriptsDir string
	ingestPattern    string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Grow the graph from run history and available capabilities",
	Long: `Scan the receipt log and the capability directory, append memory and
capability nodes for anything not yet in the graph, and persist the
manifest. Both passes are idempotent: re-running over unchanged inputs
adds nothing.

Examples:
  nstar ingest
  nstar ingest --scripts scripts --pattern "*.py"`,
	Args: cobra.NoArgs,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringVar(&ingestScriptsDir, "scripts", "scripts", "Capability directory to scan")
	ingestCmd.Flags().StringVar(&ingestPattern, "pattern", "*", "Glob over capability file names")
}

func runIngest(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	store := graph.NewStore(manifestPath, log)
	g := store.Load()
	ing := ingest.New(log)

	records, err := trace.NewLog(tracePath).Read()
	if err != nil {
		return fmt.Errorf("failed to read run history: %w", err)
	}
	memories := ing.History(g, records)

	capabilities, err := ing.Capabilities(g, ingestScriptsDir, ingestPattern)
	if err != nil {
		// A missing capability directory is not fatal to the history pass.
		log.Warnw("capability scan failed", "dir", ingestScriptsDir, "error", err)
	}

	if err := store.Save(g); err != nil {
		return err
	}

	fmt.Printf("Ingested %d memory nodes and %d capability nodes (%d total in graph)\n",
		memories, capabilities, len(g.Nodes))
	return nil
}
