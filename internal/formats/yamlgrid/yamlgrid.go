// Package yamlgrid implements a sparse YAML document format for grids.
//
//	name: Intro
//	size: 3
//	cells:
//	  - {x: 0, y: 0, t: B2}
//	  - {x: 1, y: 1, t: F1}
//
// Cells not listed are empty. Cell tokens use the text format grammar.
package yamlgrid

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bombgrid/internal/formats/text"
	"github.com/vovakirdan/bombgrid/internal/maze"
	"github.com/vovakirdan/bombgrid/internal/registry"
)

func init() {
	registry.Register(Format{})
}

var (
	ErrInvalidSize   = errors.New("invalid grid size")
	ErrCellOutside   = errors.New("cell outside grid")
	ErrDuplicateCell = errors.New("cell listed twice")
)

// Document represents the YAML structure of a grid file.
type Document struct {
	Name     string            `yaml:"name,omitempty"`
	Size     int               `yaml:"size"`
	Cells    []DocumentCell    `yaml:"cells"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// DocumentCell represents a single non-empty cell.
type DocumentCell struct {
	X int    `yaml:"x"`
	Y int    `yaml:"y"`
	T string `yaml:"t"` // Token, as in the text format
}

// Format is the registry entry for YAML grids.
type Format struct{}

// Name implements registry.Format.
func (Format) Name() string { return "yaml" }

// Extensions implements registry.Format.
func (Format) Extensions() []string { return []string{".yaml", ".yml"} }

// Decode implements registry.Format.
func (Format) Decode(data []byte) (*maze.Grid, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return doc.Grid()
}

// Encode implements registry.Format.
func (Format) Encode(g *maze.Grid) ([]byte, error) {
	doc, err := FromGrid(g)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return out, nil
}

// Grid builds the grid described by the document.
func (d *Document) Grid() (*maze.Grid, error) {
	if d.Size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, d.Size)
	}

	g := maze.NewGrid(d.Size)
	seen := make(map[maze.Coord]bool, len(d.Cells))
	for i, dc := range d.Cells {
		pos := maze.C(dc.X, dc.Y)
		if !g.InBounds(pos) {
			return nil, fmt.Errorf("cells[%d]: %w: %v", i, ErrCellOutside, pos)
		}
		if seen[pos] {
			return nil, fmt.Errorf("cells[%d]: %w: %v", i, ErrDuplicateCell, pos)
		}
		seen[pos] = true

		cell, err := text.ParseToken(dc.T)
		if err != nil {
			return nil, fmt.Errorf("cells[%d] at %v: %w %q", i, pos, err, dc.T)
		}
		g.Set(pos.X, pos.Y, cell)
	}
	return g, nil
}

// FromGrid lists every non-empty cell of g in row-major order.
func FromGrid(g *maze.Grid) (*Document, error) {
	doc := &Document{Size: g.Size(), Cells: []DocumentCell{}}
	for y := 0; y < g.Size(); y++ {
		for x, cell := range g.Row(y) {
			if _, empty := cell.(maze.Empty); empty {
				continue
			}
			tok, err := text.Token(cell)
			if err != nil {
				return nil, fmt.Errorf("at %v: %w", maze.C(x, y), err)
			}
			doc.Cells = append(doc.Cells, DocumentCell{X: x, Y: y, T: tok})
		}
	}
	return doc, nil
}
