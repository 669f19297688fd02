package maze_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/bombgrid/internal/maze"
)

func TestNewGrid(t *testing.T) {
	g := maze.NewGrid(4)

	if g.Size() != 4 {
		t.Errorf("expected size 4, got %d", g.Size())
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			cell, ok := g.Get(x, y)
			if !ok {
				t.Fatalf("Get(%d,%d) reported out of bounds", x, y)
			}
			if _, empty := cell.(maze.Empty); !empty {
				t.Errorf("at (%d,%d): expected Empty, got %#v", x, y, cell)
			}
		}
	}
}

func TestNewGridNegativeSize(t *testing.T) {
	g := maze.NewGrid(-3)
	if g.Size() != 0 {
		t.Errorf("expected size 0, got %d", g.Size())
	}
	if _, ok := g.Get(0, 0); ok {
		t.Error("empty grid should have no cells")
	}
}

func TestNilGrid(t *testing.T) {
	var g *maze.Grid

	if g.Size() != 0 {
		t.Errorf("expected size 0, got %d", g.Size())
	}
	if g.InBounds(maze.C(0, 0)) {
		t.Error("nil grid should have no cells in bounds")
	}
	if _, ok := g.Get(0, 0); ok {
		t.Error("nil grid should have no cells")
	}
	if row := g.Row(0); row != nil {
		t.Errorf("expected nil row, got %v", row)
	}
	g.Set(0, 0, maze.Wall{}) // must not panic

	err := maze.Detonate(g, 0, 0)
	if !errors.Is(err, maze.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestGridInBounds(t *testing.T) {
	g := maze.NewGrid(5)

	testCases := []struct {
		coord    maze.Coord
		expected bool
	}{
		{maze.C(0, 0), true},
		{maze.C(4, 4), true},
		{maze.C(2, 2), true},
		{maze.C(-1, 0), false},
		{maze.C(0, -1), false},
		{maze.C(5, 0), false},
		{maze.C(0, 5), false},
		{maze.C(5, 5), false},
	}

	for _, tc := range testCases {
		if got := g.InBounds(tc.coord); got != tc.expected {
			t.Errorf("InBounds(%v): expected %v, got %v", tc.coord, tc.expected, got)
		}
		if _, ok := g.At(tc.coord); ok != tc.expected {
			t.Errorf("At(%v): expected ok=%v, got %v", tc.coord, tc.expected, ok)
		}
	}
}

func TestGridSetAndGet(t *testing.T) {
	g := maze.NewGrid(3)

	g.Set(1, 2, maze.Bomb{Piercing: true, Range: 3})
	cell, ok := g.Get(1, 2)
	if !ok {
		t.Fatal("Get(1,2) reported out of bounds")
	}
	if cell != (maze.Bomb{Piercing: true, Range: 3}) {
		t.Errorf("expected piercing bomb at (1,2), got %#v", cell)
	}

	// Out of range writes are ignored
	g.Set(3, 0, maze.Wall{})
	g.Set(-1, 0, maze.Wall{})
	isWall := func(c maze.Cell) bool { return c == maze.Wall{} }
	if n := g.Count(isWall); n != 0 {
		t.Errorf("expected no walls after out of range Set, got %d", n)
	}

	// Nil means empty
	g.Set(1, 2, nil)
	cell, _ = g.Get(1, 2)
	if _, empty := cell.(maze.Empty); !empty {
		t.Errorf("expected Empty after Set(nil), got %#v", cell)
	}
}

func TestFromRows(t *testing.T) {
	g, err := maze.FromRows([][]maze.Cell{
		{maze.Empty{}, maze.Rock{}},
		{maze.Wall{}, maze.Deflector{Dir: maze.DirUp}},
	})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	if g.Size() != 2 {
		t.Errorf("expected size 2, got %d", g.Size())
	}
	cell, _ := g.Get(1, 1)
	if cell != (maze.Deflector{Dir: maze.DirUp}) {
		t.Errorf("expected DU at (1,1), got %#v", cell)
	}
	cell, _ = g.Get(1, 0)
	if cell != (maze.Rock{}) {
		t.Errorf("expected rock at (1,0), got %#v", cell)
	}
}

func TestFromRowsRagged(t *testing.T) {
	_, err := maze.FromRows([][]maze.Cell{
		{maze.Empty{}, maze.Rock{}},
		{maze.Wall{}},
	})
	if err == nil {
		t.Error("expected error for ragged rows")
	}
}

func TestGridClone(t *testing.T) {
	g := maze.NewGrid(3)
	g.Set(1, 1, maze.NewEnemy(2))

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Error("clone should be equal to original")
	}

	// Mutating the original enemy must not leak into the clone
	cell, _ := g.Get(1, 1)
	enemy := cell.(*maze.Enemy)
	enemy.Health = 1
	enemy.HitBy[maze.C(0, 0)] = struct{}{}

	cloneCell, _ := clone.Get(1, 1)
	cloned := cloneCell.(*maze.Enemy)
	if cloned.Health != 2 || len(cloned.HitBy) != 0 {
		t.Errorf("clone should not be affected by original modification, got %+v", cloned)
	}
	if g.Equal(clone) {
		t.Error("grids should differ after modification")
	}
}

func TestGridEqualSizeMismatch(t *testing.T) {
	if maze.NewGrid(2).Equal(maze.NewGrid(3)) {
		t.Error("grids of different size should not be equal")
	}
	if maze.NewGrid(2).Equal(nil) {
		t.Error("grid should not equal nil")
	}
}

func TestGridRow(t *testing.T) {
	g := maze.NewGrid(2)
	g.Set(0, 1, maze.Wall{})

	row := g.Row(1)
	if len(row) != 2 || row[0] != (maze.Wall{}) {
		t.Errorf("unexpected row: %#v", row)
	}

	// Row is a copy
	row[1] = maze.Rock{}
	if cell, _ := g.Get(1, 1); cell != (maze.Empty{}) {
		t.Error("modifying Row result should not change the grid")
	}

	if g.Row(2) != nil {
		t.Error("expected nil for out of range row")
	}
}

func TestCellsEqual(t *testing.T) {
	a := maze.NewEnemy(2)
	b := maze.NewEnemy(2)
	if !maze.CellsEqual(a, b) {
		t.Error("enemies with same health and no hits should be equal")
	}

	a.HitBy[maze.C(1, 1)] = struct{}{}
	if maze.CellsEqual(a, b) {
		t.Error("enemies with different hit sets should differ")
	}
	b.HitBy[maze.C(1, 1)] = struct{}{}
	if !maze.CellsEqual(a, b) {
		t.Error("enemies with same hit sets should be equal")
	}

	if maze.CellsEqual(maze.Bomb{Range: 1}, maze.Bomb{Range: 1, Piercing: true}) {
		t.Error("piercing and regular bombs should differ")
	}
	if maze.CellsEqual(maze.Empty{}, a) || maze.CellsEqual(a, maze.Empty{}) {
		t.Error("enemy should not equal empty")
	}
}

func TestDirDelta(t *testing.T) {
	testCases := []struct {
		dir    maze.Dir
		dx, dy int
	}{
		{maze.DirUp, 0, -1},
		{maze.DirDown, 0, 1},
		{maze.DirLeft, -1, 0},
		{maze.DirRight, 1, 0},
	}

	for _, tc := range testCases {
		dx, dy := tc.dir.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Delta(): expected (%d,%d), got (%d,%d)", tc.dir, tc.dx, tc.dy, dx, dy)
		}
	}

	if got := maze.C(2, 2).Move(maze.DirUp, 2); got != maze.C(2, 0) {
		t.Errorf("Move up 2 from (2,2): expected (2,0), got %v", got)
	}
}
