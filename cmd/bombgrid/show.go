package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bombgrid/internal/registry"
	"github.com/vovakirdan/bombgrid/internal/render"
	"github.com/vovakirdan/bombgrid/internal/runner"
)

var flagPreview string

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Render a grid file",
	Long: `Render a grid file in the terminal.

With --detonate the detonation is previewed: the grid before and after
and a summary are printed, and nothing is written to disk.

Examples:
  bombgrid show maze.txt
  bombgrid show maze.txt --detonate 0,0
  bombgrid show level.yaml --color never`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagFormat, "format", "", "Grid format (default: from file extension, then text)")
	showCmd.Flags().StringVar(&flagColor, "color", "", "Color mode: auto, always, never, mono")
	showCmd.Flags().StringVar(&flagPreview, "detonate", "", "Preview a detonation at x,y")
}

func runShow(_ *cobra.Command, args []string) error {
	path := args[0]

	f, err := registry.Resolve(flagFormat, path, runner.DefaultFormat)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	mode, err := render.ParseColorMode(cfg.Render.Color)
	if err != nil {
		return err
	}
	r := render.New(os.Stdout, mode)

	if flagPreview == "" {
		g, err := f.Decode(data)
		if err != nil {
			return fmt.Errorf("cannot load grid: %w", err)
		}
		fmt.Print(r.Title(fmt.Sprintf("%s (%dx%d)", path, g.Size(), g.Size())))
		fmt.Print(r.Grid(g))
		return nil
	}

	x, y, err := parsePoint(flagPreview)
	if err != nil {
		return err
	}

	// Previews are never journaled
	out, err := runner.New(logger, nil).DetonateBytes(path, f.Name(), data, x, y)
	if err != nil {
		fmt.Print(r.Error(err))
		return errReported
	}

	fmt.Print(r.Title("before"))
	fmt.Print(r.Grid(out.Before))
	fmt.Println()
	fmt.Print(r.Title(fmt.Sprintf("after detonating (%d,%d)", x, y)))
	fmt.Print(r.Grid(out.After))
	fmt.Println()
	fmt.Print(r.Summary(out.Summary))
	return nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (int, int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid point %q, want x,y", s)
	}
	x, err := runner.ParseCoord(xs)
	if err != nil {
		return 0, 0, err
	}
	y, err := runner.ParseCoord(ys)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
