package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"griddemo/internal/logging"
)

var (
	shape   string
	fillMin int
	fillMax int
)

// fillCmd fills one grid with random values
var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill one grid with random values, print it and its minimum",
	Long: `Fills a grid uniformly from the closed range [--min, --max]. Without the
range flags the fill section of the config is used (default [-50, 50]).

Example:
  griddemo fill --shape 3d --min 0 --max 9`,
	Args: cobra.NoArgs,
	RunE: runFill,
}

// inputCmd reads one grid from stdin
var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Read one grid from stdin, print it and its minimum",
	Long: `Prompts for every cell, one integer per line. Lines that are not base-10
integers are rejected and asked again.

Example:
  seq 1 9 | griddemo input --shape 2d`,
	Args: cobra.NoArgs,
	RunE: runInput,
}

func init() {
	for _, c := range []*cobra.Command{fillCmd, inputCmd} {
		c.Flags().StringVarP(&shape, "shape", "s", "2d", "Grid shape: 2d (3x3) or 3d (3x3x3)")
	}
	fillCmd.Flags().IntVar(&fillMin, "min", 0, "Lower bound, inclusive (default from config)")
	fillCmd.Flags().IntVar(&fillMax, "max", 0, "Upper bound, inclusive (default from config)")
}

// runFill fills, prints and reports the minimum of one grid
func runFill(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)
	g, err := s.newGrid(shape)
	if err != nil {
		return err
	}

	lo, hi := cfg.Fill.Min, cfg.Fill.Max
	if cmd.Flags().Changed("min") {
		lo = fillMin
	}
	if cmd.Flags().Changed("max") {
		hi = fillMax
	}
	logs.For(logging.CategoryFill).Info("filling grid",
		zap.String("shape", shape), zap.Int("min", lo), zap.Int("max", hi))
	if err := g.FillRandom(lo, hi); err != nil {
		return err
	}
	return s.printWithMin(g, "demo.min")
}

// runInput reads, prints and reports the minimum of one grid
func runInput(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)
	g, err := s.newGrid(shape)
	if err != nil {
		return err
	}
	logs.For(logging.CategoryInput).Info("reading grid", zap.String("shape", shape))
	if err := g.InputFromConsole(); err != nil {
		return err
	}
	return s.printWithMin(g, "demo.min")
}
