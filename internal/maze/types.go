// Package maze provides the grid model and the detonation engine.
// This package is UI-agnostic, deterministic and performs no I/O.
package maze

// Dir represents a direction a blast travels in.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Dirs lists the four cardinal directions in blast order.
var Dirs = [4]Dir{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Cell is the closed set of things a grid position can hold:
// Empty, Wall, Rock, Deflector, *Enemy and Bomb.
type Cell interface {
	cell()
}

// Empty is a free position.
type Empty struct{}

// Wall blocks every blast.
type Wall struct{}

// Rock blocks a blast unless it is piercing. Rocks are never destroyed.
type Rock struct{}

// Deflector sends an incoming blast off in Dir from its own position.
type Deflector struct {
	Dir Dir
}

// Enemy loses one health point per distinct blast origin that reaches it.
// HitBy holds the origins that already damaged it.
type Enemy struct {
	Health int
	HitBy  map[Coord]struct{}
}

// Bomb explodes up to Range cells in each direction.
// A piercing bomb's blast passes through rocks.
type Bomb struct {
	Piercing bool
	Range    int
}

func (Empty) cell()     {}
func (Wall) cell()      {}
func (Rock) cell()      {}
func (Deflector) cell() {}
func (*Enemy) cell()    {}
func (Bomb) cell()      {}

// NewEnemy returns an enemy with the given health and no recorded hits.
func NewEnemy(health int) *Enemy {
	return &Enemy{Health: health, HitBy: make(map[Coord]struct{})}
}

// WasHitBy reports whether the blast from origin already damaged the enemy.
func (e *Enemy) WasHitBy(origin Coord) bool {
	_, ok := e.HitBy[origin]
	return ok
}

// markHit records origin. It is idempotent.
func (e *Enemy) markHit(origin Coord) {
	if e.HitBy == nil {
		e.HitBy = make(map[Coord]struct{})
	}
	e.HitBy[origin] = struct{}{}
}

// clone returns a deep copy of the enemy.
func (e *Enemy) clone() *Enemy {
	hits := make(map[Coord]struct{}, len(e.HitBy))
	for c := range e.HitBy {
		hits[c] = struct{}{}
	}
	return &Enemy{Health: e.Health, HitBy: hits}
}

// CellsEqual reports whether two cells hold the same variant and payload.
// Enemies compare health and hit sets.
func CellsEqual(a, b Cell) bool {
	switch av := a.(type) {
	case *Enemy:
		bv, ok := b.(*Enemy)
		if !ok || av.Health != bv.Health || len(av.HitBy) != len(bv.HitBy) {
			return false
		}
		for c := range av.HitBy {
			if !bv.WasHitBy(c) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
