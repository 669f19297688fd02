package text

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/bombgrid/internal/maze"
	"github.com/vovakirdan/bombgrid/internal/registry"
)

func init() {
	registry.Register(Format{})
}

// ParseError locates a bad token in the input.
// Line and Column are 1-based; Column counts tokens, not bytes.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %d: %v %q", e.Line, e.Column, e.Err, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Format is the registry entry for the token format.
type Format struct{}

// Name implements registry.Format.
func (Format) Name() string { return "text" }

// Extensions implements registry.Format.
func (Format) Extensions() []string { return []string{".txt", ".maze"} }

// Decode implements registry.Format.
func (Format) Decode(data []byte) (*maze.Grid, error) { return Parse(string(data)) }

// Encode implements registry.Format.
func (Format) Encode(g *maze.Grid) ([]byte, error) {
	s, err := Marshal(g)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Parse reads a grid from its token form.
// Blank lines are skipped. The number of rows fixes the grid size and every
// row must hold exactly that many tokens.
func Parse(src string) (*maze.Grid, error) {
	var rows [][]maze.Cell
	var lineNos []int

	for i, line := range strings.Split(src, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]maze.Cell, 0, len(fields))
		for col, tok := range fields {
			cell, err := ParseToken(tok)
			if err != nil {
				return nil, &ParseError{Line: i + 1, Column: col + 1, Token: tok, Err: err}
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
		lineNos = append(lineNos, i+1)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	n := len(rows[0])
	if n != len(rows) {
		// Blame the first surplus row, or the first row when rows are missing.
		line := lineNos[0]
		if len(rows) > n {
			line = lineNos[n]
		}
		return nil, &ParseError{
			Line: line,
			Err:  fmt.Errorf("%w: %d rows of %d cells", ErrNotSquare, len(rows), n),
		}
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, &ParseError{
				Line: lineNos[i],
				Err:  fmt.Errorf("%w: got %d cells, want %d", ErrRaggedRow, len(row), n),
			}
		}
	}

	return maze.FromRows(rows)
}

// Marshal writes the grid as tokens, space separated, one row per line.
func Marshal(g *maze.Grid) (string, error) {
	var sb strings.Builder
	n := g.Size()
	for y := 0; y < n; y++ {
		for x, cell := range g.Row(y) {
			tok, err := Token(cell)
			if err != nil {
				return "", fmt.Errorf("at %v: %w", maze.C(x, y), err)
			}
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(tok)
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
