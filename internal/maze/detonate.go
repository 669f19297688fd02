package maze

// Detonate explodes the bomb at (x, y), mutating g in place.
//
// The bomb cell is cleared and its blast travels up to its range in each
// direction. Deflectors hand the remaining range to a new direction, walls
// stop the blast, rocks stop it unless it is piercing, enemies lose one
// health point per distinct origin and bombs in the way detonate in turn
// with themselves as the new origin.
//
// If (x, y) is off the grid or holds no bomb, Detonate returns a
// *DetonationError wrapping ErrOutOfBounds or ErrNotABomb and leaves g
// untouched.
func Detonate(g *Grid, x, y int) error {
	origin := C(x, y)
	cell, ok := g.At(origin)
	if !ok {
		return &DetonationError{Pos: origin, Err: ErrOutOfBounds}
	}
	bomb, ok := cell.(Bomb)
	if !ok {
		return &DetonationError{Pos: origin, Err: ErrNotABomb}
	}

	g.Set(x, y, Empty{})
	b := blast{
		grid:     g,
		origin:   origin,
		piercing: bomb.Piercing,
		walked:   make(map[leg]int),
	}
	b.run(origin, bomb.Range)
	return nil
}

// blast is one detonation event. Every cell it reaches, including through
// deflectors, is attributed to origin.
type blast struct {
	grid     *Grid
	origin   Coord
	piercing bool
	walked   map[leg]int // Largest budget already walked per leg
}

// leg is a straight run of the blast: a start cell and a direction.
type leg struct {
	from Coord
	dir  Dir
}

type pending struct {
	leg
	remaining int
}

// run walks the four directions from start, following deflectors through
// an explicit stack so that deflector cycles cannot grow the call stack.
// A leg already walked with at least the same budget is skipped: blockers
// never change during a blast, so the shorter walk would only revisit
// cells this origin already handled.
func (b blast) run(start Coord, budget int) {
	stack := make([]pending, 0, len(Dirs))
	for i := len(Dirs) - 1; i >= 0; i-- {
		stack = append(stack, pending{leg{start, Dirs[i]}, budget})
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if best, ok := b.walked[p.leg]; ok && p.remaining <= best {
			continue
		}
		b.walked[p.leg] = p.remaining

		if next, ok := b.propagate(p.from, p.dir, p.remaining); ok {
			stack = append(stack, next)
		}
	}
}

// propagate walks up to remaining cells from `from` in direction d. When a
// deflector redirects the blast, the hand-off is returned instead of walked.
func (b blast) propagate(from Coord, d Dir, remaining int) (pending, bool) {
	for step := 1; step <= remaining; step++ {
		target := from.Move(d, step)
		cell, ok := b.grid.At(target)
		if !ok {
			return pending{}, false
		}
		if defl, ok := cell.(Deflector); ok {
			return pending{leg{target, defl.Dir}, remaining - step}, true
		}
		if !b.hit(target, cell) {
			return pending{}, false
		}
	}
	return pending{}, false
}

// hit applies the blast to the cell at target and reports whether the
// blast keeps travelling past it.
func (b blast) hit(target Coord, cell Cell) bool {
	switch c := cell.(type) {
	case Empty:
		return true
	case *Enemy:
		if !c.WasHitBy(b.origin) {
			c.markHit(b.origin)
			if c.Health > 1 {
				c.Health--
			} else {
				b.grid.Set(target.X, target.Y, Empty{})
			}
		}
		return true
	case Bomb:
		// Cannot fail: the cell was just matched as a bomb.
		_ = Detonate(b.grid, target.X, target.Y)
		return true
	case Rock:
		return b.piercing
	case Wall:
		return false
	case Deflector:
		// Handled by propagate before hit is reached.
		return true
	default:
		return true
	}
}
