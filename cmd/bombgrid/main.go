// bombgrid detonates a bomb on a grid file and writes the resulting grid.
//
// Usage:
//
//	bombgrid <input> <output-dir> <x> <y>  - Detonate the bomb at (x, y)
//	bombgrid show <file>                   - Render a grid, optionally previewing a detonation
//	bombgrid formats                       - List supported grid formats
//	bombgrid history                       - Show journaled runs
//	bombgrid serve                         - Start the HTTP detonation server
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.bombgrid/config.yaml)
//	--log-level <level> - debug, info, warn or error
//	--journal           - Record runs in the SQLite journal
//	--journal-path      - Journal database path
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bombgrid/internal/config"
	"github.com/vovakirdan/bombgrid/internal/render"
	"github.com/vovakirdan/bombgrid/internal/runner"
	"github.com/vovakirdan/bombgrid/internal/storage"

	// Import formats to register them
	_ "github.com/vovakirdan/bombgrid/internal/formats/text"
	_ "github.com/vovakirdan/bombgrid/internal/formats/yamlgrid"
)

var (
	// Global flags
	flagConfig      string
	flagLogLevel    string
	flagJournal     bool
	flagJournalPath string

	// Detonation flags
	flagFormat string
	flagPrint  bool
	flagColor  string
)

var (
	cfg    config.Config
	logger *log.Logger
)

// errReported marks failures that were already logged.
var errReported = errors.New("reported")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bombgrid <input> <output-dir> <x> <y>",
	Short: "Detonate bombs on a square grid",
	Long: `bombgrid loads a grid, detonates the bomb at column x, row y and writes
the resulting grid to a file with the input's name inside the output directory.
On any failure that file holds a single "ERROR: <description>" line instead.

Grid tokens:
  _      empty          W      wall          R      rock
  F<n>   enemy (1-9)    B<r>   bomb          S<r>   piercing bomb
  DU DD DL DR           deflector up, down, left, right

Available commands:
  show     - Render a grid file
  formats  - List supported grid formats
  history  - Show journaled runs
  serve    - Start the HTTP detonation server

Examples:
  bombgrid maze.txt out/ 0 0
  bombgrid level.yaml out/ 2 1 --print
  bombgrid maze.dat out/ 0 0 --format text --journal`,
	Args:              cobra.ExactArgs(4),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runDetonate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagJournal, "journal", false, "Record runs in the journal")
	rootCmd.PersistentFlags().StringVar(&flagJournalPath, "journal-path", "", "Path to journal database")

	rootCmd.Flags().StringVar(&flagFormat, "format", "", "Grid format (default: from file extension, then text)")
	rootCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the resulting grid and a summary")
	rootCmd.Flags().StringVar(&flagColor, "color", "", "Color mode: auto, always, never, mono")

	// Add subcommands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagJournal {
		cfg.Journal.Enabled = true
	}
	if flagJournalPath != "" {
		cfg.Journal.Path = flagJournalPath
	}
	if flagColor != "" {
		cfg.Render.Color = flagColor
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: cfg.Log.Timestamps,
		Prefix:          "bombgrid",
		Level:           level,
	})
	return nil
}

// openJournal opens the journal when it is enabled. A nil store means
// runs are not recorded.
func openJournal() (*storage.Store, error) {
	if !cfg.Journal.Enabled {
		return nil, nil
	}
	return openStore()
}

// openStore opens the journal database at the configured path.
func openStore() (*storage.Store, error) {
	path, err := config.ExpandHome(cfg.Journal.Path)
	if err != nil {
		return nil, fmt.Errorf("journal path: %w", err)
	}
	return storage.Open(path)
}

// newService builds a runner, continuing without a journal if it cannot
// be opened. The returned cleanup closes the journal.
func newService() (*runner.Service, *storage.Store, func()) {
	store, err := openJournal()
	if err != nil {
		logger.Warn("could not open journal", "error", err)
		// Continue without journal
		store = nil
	}
	if store == nil {
		return runner.New(logger, nil), nil, func() {}
	}
	return runner.New(logger, store), store, func() { store.Close() }
}

func runDetonate(_ *cobra.Command, args []string) error {
	svc, _, cleanup := newService()
	defer cleanup()

	req := runner.Request{
		InputPath: args[0],
		OutputDir: args[1],
		Format:    flagFormat,
	}

	x, err := runner.ParseCoord(args[2])
	var y int
	if err == nil {
		y, err = runner.ParseCoord(args[3])
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, svc.Fail(req, err))
	}
	req.X, req.Y = x, y

	out, err := svc.Run(req)
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}

	if flagPrint {
		mode, err := render.ParseColorMode(cfg.Render.Color)
		if err != nil {
			return err
		}
		r := render.New(os.Stdout, mode)
		fmt.Print(r.Grid(out.After))
		fmt.Print(r.Summary(out.Summary))
	}
	return nil
}
