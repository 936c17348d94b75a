package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/turing/internal/adapters/file"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <files...>",
	Short: "Check machine files without running them",
	Long:  `Loads each machine file and reports how many rules were accepted and how many malformed rules were dropped.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if failed := runValidate(os.Stdout, args); failed > 0 {
			fmt.Printf("Validation failed: %d of %d files could not be loaded\n", failed, len(args))
			os.Exit(1)
		}
		fmt.Println("All machines are valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate prints one report line per file and returns the number of files that failed to load.
func runValidate(w io.Writer, paths []string) int {
	loader := file.NewLoader(nil)
	failed := 0

	for _, path := range paths {
		m, report, err := loader.Inspect(path)
		if err != nil {
			failed++
			fmt.Fprintf(w, "%s: error: %v\n", path, err)
			continue
		}
		fmt.Fprintf(w, "%s: %s, tape %d cells, head %d, %d rules, %d dropped\n",
			path, report.Format, len([]rune(m.Tape)), m.InitialPosition, report.Rules, report.Dropped)
	}
	return failed
}
