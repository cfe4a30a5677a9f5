package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clbarnes/solve-sudoku/internal/parse"
	"github.com/clbarnes/solve-sudoku/internal/render"
	"github.com/clbarnes/solve-sudoku/internal/solver"
)

var (
	checkUnique bool
	timeout     time.Duration
	pretty      bool
	outputFile  string
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a sudoku puzzle from a file",
		Long: `Solve a sudoku puzzle read from a file, or from stdin when the file is "-".

Cells are separated by tabs, commas, or nothing (one digit per cell);
0 or blank marks an unknown cell. The grid side length must be the
square of an integer >= 2, e.g. 4, 9, 16 or 25.

Examples:
  solve-sudoku solve puzzle.csv
  solve-sudoku solve --unique --timeout 30s puzzle.tsv
  cat puzzle.csv | solve-sudoku solve --pretty -`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().BoolVarP(&checkUnique, "unique", "u", false, "Fail if the puzzle has more than one solution")
	solveCmd.Flags().DurationVar(&timeout, "timeout", 0, "Give up after this long (0 = no limit)")
	solveCmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Render the grids with box borders")
	solveCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the solution to a file instead of stdout")
	viper.BindPFlag("timeout", solveCmd.Flags().Lookup("timeout"))

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	values, format, err := parse.ParseFile(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if d := viper.GetDuration("timeout"); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	opts := &solver.Options{CheckUnique: checkUnique}
	if verbose {
		// Log progress at 10% steps; per-node logging would drown the output.
		next := 0.1
		opts.Progress = func(done float64) {
			if done >= next {
				log.Debug("solving", "assigned", fmt.Sprintf("%.0f%%", done*100))
				next = done + 0.1
			}
		}
	}

	res := solver.New(opts).SolveValues(ctx, values)
	log.Debug("search finished",
		"status", res.Status,
		"nodes", res.Stats.Nodes,
		"deepest", res.Stats.Deepest,
		"duration", res.Stats.Duration,
	)

	if res.Grid == nil {
		return res.Err
	}

	solved := res.Grid.Values()
	order := res.Grid.Geometry().Order
	var out string
	if pretty {
		out = render.Pretty(values, order, nil) + "\n\n" + render.Pretty(solved, order, render.GivenMask(values))
	} else {
		out = render.Plain(solved, format)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(out+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write solution: %w", err)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	// With --unique a second solution still exits non-zero after printing
	// the first one found.
	return res.Err
}
