package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erikhoward/nstar/graph"
	"github.com/erikhoward/nstar/kernel"
	"github.com/erikhoward/nstar/trace"
)

var runCmd = &cobra.Command{
	Use:   "run <intent...>",
	Short: "Dispatch an intent signal against the graph",
	Long: `Dispatch a free-text intent signal. The first edge whose trigger phrase
occurs in the signal wins and its operations are executed in order.
Unmatched signals are routed to the fallback path.

Examples:
  nstar run build infra
  nstar run "status check"
  nstar run recall r-demo`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDispatch,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDispatch(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	signal := strings.Join(args, " ")

	store := graph.NewStore(manifestPath, log)
	k := kernel.New(store,
		kernel.WithLogger(log),
		kernel.WithTrace(trace.NewLog(tracePath)),
	)

	res := k.Dispatch(cmd.Context(), signal)
	if !res.Matched {
		fmt.Println(res.Response)
		return nil
	}

	fmt.Printf("[%d] %s -> %s\n", res.NodeID, res.Label, res.Response)
	fmt.Println(res.OpsSummary())
	return nil
}
