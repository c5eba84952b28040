package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"griddemo/cmd/griddemo/ui"
	"griddemo/internal/config"
	"griddemo/internal/grid"
	"griddemo/internal/i18n"
	"griddemo/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool
	locale     string
	color      bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logs   *logging.Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "griddemo",
	Short: "Fixed-size integer grid demonstration (3x3 and 3x3x3)",
	Long: `griddemo exercises two fixed-size integer grids through one shared
interface: random filling, keyboard input, minimum element and printing.

Run without arguments to play the full demonstration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// config init rewrites the file, so a broken one must not stop it.
		repairing := cmd == configInitCmd

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			if !repairing {
				return err
			}
			cfg = config.DefaultConfig()
		}
		if cmd.Flags().Changed("locale") {
			cfg.UI.Locale = locale
		}
		if cmd.Flags().Changed("color") {
			cfg.UI.Color = color
		}
		if err := cfg.Validate(); err != nil {
			if !repairing {
				return fmt.Errorf("invalid config %s: %w", configPath, err)
			}
			cfg = config.DefaultConfig()
		}

		logs, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logs.For(logging.CategoryBoot)
		logger.Debug("config loaded",
			zap.String("path", configPath),
			zap.String("locale", cfg.UI.Locale),
			zap.Int("fill_min", cfg.Fill.Min),
			zap.Int("fill_max", cfg.Fill.Max))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logs != nil {
			_ = logs.Sync()
		}
	},
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "Message locale (en-US, uk-UA)")
	rootCmd.PersistentFlags().BoolVar(&color, "color", false, "Style headings")

	rootCmd.Flags().BoolVar(&interactive, "interactive", true, "Read a 2D and a 3D grid from stdin after the random part")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(inputCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError writes err to w, styled when color is enabled.
func reportError(w io.Writer, err error) {
	styles := ui.NewStyles(ui.DetectTheme(), cfg != nil && cfg.UI.Color)
	fmt.Fprintln(w, styles.RenderError("Error: "+err.Error()))
}

// session bundles what every command needs to drive grids.
type session struct {
	console *grid.Console
	styles  ui.Styles
	opts    []grid.Option
}

// newSession wires a console on the command's streams, localized and styled
// from the loaded config. One console is shared by every grid of a command so
// buffered stdin is never split between readers.
func newSession(cmd *cobra.Command) *session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logs == nil {
		logs = logging.Nop()
	}
	styles := ui.NewStyles(ui.DetectTheme(), cfg.UI.Color)
	console := grid.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(),
		grid.WithPrinter(i18n.NewPrinter(cfg.UI.Locale)),
		grid.WithHeadingStyle(styles.RenderHeading),
		grid.WithConsoleLogger(logs.For(logging.CategoryInput)),
	)
	return &session{
		console: console,
		styles:  styles,
		opts: []grid.Option{
			grid.WithConsole(console),
			grid.WithLogger(logs.For(logging.CategoryLifecycle)),
			grid.WithFillLogger(logs.For(logging.CategoryFill)),
			grid.WithInputLogger(logs.For(logging.CategoryInput)),
		},
	}
}

// options returns the session options followed by extra.
func (s *session) options(extra ...grid.Option) []grid.Option {
	return append(slices.Clone(s.opts), extra...)
}

// newGrid builds a grid of the named shape.
func (s *session) newGrid(shape string, extra ...grid.Option) (grid.Grid, error) {
	opts := s.options(extra...)
	switch shape {
	case "2d":
		return grid.New2D(opts...), nil
	case "3d":
		return grid.New3D(opts...), nil
	default:
		return nil, fmt.Errorf("unknown shape %q (valid: 2d, 3d)", shape)
	}
}

// result prints a localized result line.
func (s *session) result(key string, args ...any) {
	fmt.Fprintln(s.console.Writer(), s.styles.RenderResult(s.console.Text(key, args...)))
}

// printWithMin prints g then its minimum under key.
func (s *session) printWithMin(g grid.Grid, key string) error {
	g.Print()
	m, err := g.MinElement()
	if err != nil {
		return err
	}
	logs.For(logging.CategoryRender).Debug("minimum computed", zap.Int("min", m))
	// Plain digits, like the cells; the locale printer would group them.
	s.result(key, strconv.Itoa(m))
	return nil
}
