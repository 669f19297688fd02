// Package render draws grids and run summaries for the terminal.
// Colors are only emitted when the color mode allows it; plain output keeps
// the token grammar so it can be read back as a grid.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vovakirdan/bombgrid/internal/formats/text"
	"github.com/vovakirdan/bombgrid/internal/maze"
)

// ColorMode selects when styled output is produced.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Color when writing to a terminal
	ColorAlways ColorMode = "always" // Always color
	ColorNever  ColorMode = "never"  // Plain text
	ColorMono   ColorMode = "mono"   // Grayscale when writing to a terminal
)

// ParseColorMode validates a color mode name.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever, ColorMono:
		return m, nil
	default:
		return "", fmt.Errorf("render: unknown color mode %q", s)
	}
}

// Renderer draws grids with a theme.
type Renderer struct {
	theme Theme
	color bool
}

// New creates a Renderer for w. In auto and mono modes color is enabled
// only when w is a terminal; mono uses the grayscale theme.
func New(w io.Writer, mode ColorMode) *Renderer {
	color := UseColor(w, mode)
	lr := lipgloss.NewRenderer(w)
	if color && mode == ColorAlways {
		lr.SetColorProfile(termenv.ANSI256)
	}
	theme := DefaultTheme(lr)
	if mode == ColorMono {
		theme = MonochromeTheme(lr)
	}
	return &Renderer{theme: theme, color: color}
}

// NewWithTheme creates a Renderer with an explicit theme.
func NewWithTheme(theme Theme, color bool) *Renderer {
	return &Renderer{theme: theme, color: color}
}

// UseColor reports whether mode enables color for w.
func UseColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Color reports whether the renderer emits styled output.
func (r *Renderer) Color() bool {
	return r.color
}

// Grid draws g one row per line. Tokens are padded to a common width so
// columns line up; lines carry no trailing spaces.
func (r *Renderer) Grid(g *maze.Grid) string {
	n := g.Size()
	tokens := make([][]string, n)
	width := 1
	for y := 0; y < n; y++ {
		row := g.Row(y)
		tokens[y] = make([]string, len(row))
		for x, cell := range row {
			tok, err := text.Token(cell)
			if err != nil {
				tok = "?"
			}
			tokens[y][x] = tok
			width = max(width, len(tok))
		}
	}

	var sb strings.Builder
	sb.Grow(n * n * (width + 1))
	for y, row := range tokens {
		cells := g.Row(y)
		for x, tok := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if x < len(row)-1 {
				tok = fmt.Sprintf("%-*s", width, tok)
			}
			sb.WriteString(r.styleCell(cells[x], tok))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Title draws a heading line.
func (r *Renderer) Title(s string) string {
	return r.apply(r.theme.Title, s) + "\n"
}

// Summary draws the counters of a run on one line.
func (r *Renderer) Summary(s maze.Summary) string {
	parts := []string{
		r.apply(r.theme.Label, "bombs detonated:") + " " + r.apply(r.theme.Value, fmt.Sprint(s.BombsDetonated)),
		r.apply(r.theme.Label, "enemies hit:") + " " + r.apply(r.theme.Value, fmt.Sprint(s.EnemiesHit)),
		r.apply(r.theme.Label, "enemies destroyed:") + " " + r.apply(r.theme.Value, fmt.Sprint(s.EnemiesDestroyed)),
	}
	return strings.Join(parts, "  ") + "\n"
}

// Error draws an error line.
func (r *Renderer) Error(err error) string {
	return r.apply(r.theme.Error, "ERROR: "+err.Error()) + "\n"
}

func (r *Renderer) styleCell(cell maze.Cell, tok string) string {
	if !r.color {
		return tok
	}
	var style lipgloss.Style
	switch c := cell.(type) {
	case maze.Empty:
		style = r.theme.Empty
	case maze.Wall:
		style = r.theme.Wall
	case maze.Rock:
		style = r.theme.Rock
	case maze.Deflector:
		style = r.theme.Deflector
	case *maze.Enemy:
		style = r.theme.Enemy
		if len(c.HitBy) > 0 {
			style = r.theme.EnemyWounded
		}
	case maze.Bomb:
		style = r.theme.Bomb
		if c.Piercing {
			style = r.theme.Piercing
		}
	default:
		return tok
	}
	return style.Render(tok)
}

func (r *Renderer) apply(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}
