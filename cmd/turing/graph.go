package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/turing/internal/adapters/file"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/runtime"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the transition table as a state diagram",
	Long: `Loads a machine file and outputs a Mermaid diagram (stateDiagram-v2) of its rules.
With --run, the machine is executed first (bounded by --max-steps) and the halting state is highlighted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := file.NewLoader(nil).Load(args[0])
		if err != nil {
			fmt.Printf("Error loading machine: %v\n", err)
			os.Exit(1)
		}

		var overlay *graph.GraphOverlay
		if run, _ := cmd.Flags().GetBool("run"); run {
			maxSteps, _ := cmd.Flags().GetInt("max-steps")
			res := runtime.NewEngine(nil, runtime.WithMaxSteps(maxSteps)).Run(context.Background(), m, 0)
			overlay = graph.OverlayFromResult(res)
		}

		fmt.Print(graph.GenerateMermaid(m, overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().Bool("run", false, "Execute the machine and highlight the state it halts in")
	graphCmd.Flags().Int("max-steps", 10000, "Step ceiling for --run (0 = unlimited)")
}
