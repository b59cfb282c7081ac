// Package main provides the spanforest CLI: it reads one edge-weighted
// graph description, prints the minimum spanning forest weight, then one
// sensitivity line per forest edge in alphanumeric order.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/veleth/spanforest/ewgraph"
	"github.com/veleth/spanforest/msf"
)

var (
	flagVerify  bool
	flagWorkers int
)

var rootCmd = &cobra.Command{
	Use:   "spanforest [file]",
	Short: "Minimum spanning forest weight and per-edge removal sensitivity",
	Long: `spanforest reads an edge-weighted undirected graph ("V", "E", then E
lines "v w weight"), computes its minimum spanning forest with Prim's
algorithm, and reports how the optimum reacts to the removal of each
forest edge.

Output: the forest weight on the first line, then one line per forest
edge formatted "<edge> <recomputed-weight>", sorted alphanumerically.
With no file argument the graph is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVar(&flagVerify, "verify", false,
		"run the quadratic optimality self-check on the computed forest")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 1,
		"goroutines for the sensitivity sweep (1 = serial)")
}

func run(cmd *cobra.Command, args []string) error {
	if flagWorkers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", flagWorkers)
	}

	in := cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	g, err := ewgraph.Parse(in)
	if err != nil {
		return err
	}

	buildOpts := []msf.Option{}
	if flagVerify {
		buildOpts = append(buildOpts, msf.WithVerify())
	}
	forest, err := msf.Build(g, buildOpts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printWeight(out, forest.Weight())

	records, err := msf.Sensitivity(cmd.Context(), g, forest, msf.WithWorkers(flagWorkers))
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Fprintln(out, r)
	}

	return nil
}

// printWeight renders the forest weight in its shortest exact decimal form,
// matching the Record line rendering.
func printWeight(w io.Writer, weight float64) {
	fmt.Fprintln(w, strconv.FormatFloat(weight, 'f', -1, 64))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
