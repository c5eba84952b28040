package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"griddemo/internal/grid"
	"griddemo/internal/logging"
)

var interactive bool

// demoCmd plays the full demonstration
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the full grid demonstration",
	Long: `Runs the demonstration in four parts:
  1. A 2D grid filled with random values, printed with its minimum
  2. A 3D grid used only through the Grid interface, same steps
  3. Both shapes constructed pre-filled and driven through the interface
  4. Keyboard input of a 2D and a 3D grid (skip with --interactive=false)`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&interactive, "interactive", true, "Read a 2D and a 3D grid from stdin after the random part")
}

// runDemo executes the demonstration sequence
func runDemo(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)
	out := s.console.Writer()
	fill := logs.For(logging.CategoryFill)

	fmt.Fprintln(out, s.styles.RenderTitle(s.console.Text("demo.title")))

	// Concrete 2D grid.
	m2 := grid.New2D(s.opts...)
	if err := m2.FillRandom(cfg.Fill.Min, cfg.Fill.Max); err != nil {
		return err
	}
	fill.Debug("demo grid filled", zap.String("shape", "2d"))
	if err := s.printWithMin(m2, "demo.min.2d"); err != nil {
		return err
	}
	fmt.Fprintln(out)

	// 3D grid held through the interface.
	var m3 grid.Grid = grid.New3D(s.opts...)
	if err := m3.FillRandom(cfg.Fill.Min, cfg.Fill.Max); err != nil {
		return err
	}
	fill.Debug("demo grid filled", zap.String("shape", "3d"))
	if err := s.printWithMin(m3, "demo.min.3d"); err != nil {
		return err
	}
	fmt.Fprintln(out)

	// Both shapes filled at construction, used only as grid.Grid.
	prefilled := []struct {
		g              grid.Grid
		banner, minKey string
	}{
		{grid.New2D(s.options(grid.WithRandomFill())...), "demo.iface.2d", "demo.iface.min.2d"},
		{grid.New3D(s.options(grid.WithRandomFill())...), "demo.iface.3d", "demo.iface.min.3d"},
	}
	for _, p := range prefilled {
		fmt.Fprintln(out)
		s.console.Heading(p.banner)
		if err := s.printWithMin(p.g, p.minKey); err != nil {
			return err
		}
	}
	fmt.Fprintln(out)

	if !interactive {
		return nil
	}

	users := []struct {
		g              grid.Grid
		banner, minKey string
	}{
		{grid.New2D(s.opts...), "demo.user.2d", "demo.user.min.2d"},
		{grid.New3D(s.opts...), "demo.user.3d", "demo.user.min.3d"},
	}
	for i, u := range users {
		if i > 0 {
			fmt.Fprintln(out)
		}
		s.console.Heading(u.banner)
		if err := u.g.InputFromConsole(); err != nil {
			return err
		}
		if err := s.printWithMin(u.g, u.minKey); err != nil {
			return err
		}
	}
	return nil
}
