package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrNotABomb is returned when the detonation target holds no bomb.
	ErrNotABomb = errors.New("not a bomb, cannot detonate")
	// ErrOutOfBounds is returned when the detonation target is off the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// DetonationError reports why Detonate refused a position.
type DetonationError struct {
	Pos Coord
	Err error
}

func (e *DetonationError) Error() string {
	return fmt.Sprintf("%v at %v", e.Err, e.Pos)
}

func (e *DetonationError) Unwrap() error {
	return e.Err
}
