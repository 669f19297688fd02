package maze

// Summary describes what a detonation changed on a grid.
type Summary struct {
	BombsDetonated   int // Bombs cleared, the initial one included
	EnemiesHit       int // Enemies that lost health but survived
	EnemiesDestroyed int // Enemies removed from the grid
}

// Summarize compares a grid before and after a detonation.
// Both grids must have the same size; otherwise the zero Summary is returned.
func Summarize(before, after *Grid) Summary {
	var s Summary
	if before == nil || after == nil || before.n != after.n {
		return s
	}
	for i, prev := range before.cells {
		next := after.cells[i]
		switch p := prev.(type) {
		case Bomb:
			if _, gone := next.(Empty); gone {
				s.BombsDetonated++
			}
		case *Enemy:
			switch n := next.(type) {
			case Empty:
				s.EnemiesDestroyed++
			case *Enemy:
				if n.Health < p.Health {
					s.EnemiesHit++
				}
			}
		}
	}
	return s
}
