package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erikhoward/nstar/graph"
)

var (
	graphFormat string
	graphOutput string
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Intent graph operations",
	Long:  `Commands for inspecting the intent graph, including exporting to visualization formats.`,
}

var graphExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the intent graph to a visualization format",
	Long: `Export the graph manifest to Mermaid or JSON format.

Examples:
  nstar graph export
  nstar graph export --format json
  nstar graph export --format mermaid --output graph.md`,
	Args: cobra.NoArgs,
	RunE: runGraphExport,
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.AddCommand(graphExportCmd)

	graphExportCmd.Flags().StringVar(&graphFormat, "format", "mermaid", "Output format: mermaid, json")
	graphExportCmd.Flags().StringVar(&graphOutput, "output", "", "Output file (default: stdout)")
}

func runGraphExport(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	g := graph.NewStore(manifestPath, log).Load()

	// Generate output based on format
	var output []byte
	switch graphFormat {
	case "mermaid":
		output = []byte(g.ToMermaid())
	case "json":
		jsonData, err := g.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to generate JSON: %w", err)
		}
		output = jsonData
	default:
		return fmt.Errorf("unsupported format: %s (use 'mermaid' or 'json')", graphFormat)
	}

	// Write output
	if graphOutput != "" {
		if err := os.WriteFile(graphOutput, output, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Graph exported to %s\n", graphOutput)
	} else {
		fmt.Print(string(output))
	}

	return nil
}
