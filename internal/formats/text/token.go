// Package text implements the whitespace separated token format for grids.
//
// Each line is a row and each token a cell:
//
//	_      empty
//	W      wall
//	R      rock
//	F<n>   enemy with n health points (1-9)
//	B<r>   bomb with range r
//	S<r>   piercing bomb with range r
//	D<d>   deflector towards d (U, D, L or R)
package text

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/bombgrid/internal/maze"
)

var (
	ErrEmptyToken       = errors.New("empty token")
	ErrUnknownToken     = errors.New("unknown token")
	ErrInvalidHealth    = errors.New("invalid enemy health")
	ErrInvalidRange     = errors.New("invalid bomb range")
	ErrInvalidDirection = errors.New("invalid deflector direction")
	ErrUnencodable      = errors.New("cell cannot be encoded")
	ErrEmptyGrid        = errors.New("grid has no rows")
	ErrNotSquare        = errors.New("grid is not square")
	ErrRaggedRow        = errors.New("row length differs from grid size")
)

// ParseToken converts a single token into a cell.
func ParseToken(tok string) (maze.Cell, error) {
	if tok == "" {
		return nil, ErrEmptyToken
	}

	switch tok[0] {
	case '_':
		return exact(tok, maze.Empty{})
	case 'W':
		return exact(tok, maze.Wall{})
	case 'R':
		return exact(tok, maze.Rock{})
	case 'F':
		if len(tok) != 2 || tok[1] < '1' || tok[1] > '9' {
			return nil, ErrInvalidHealth
		}
		return maze.NewEnemy(int(tok[1] - '0')), nil
	case 'B', 'S':
		rng, ok := parseRange(tok[1:])
		if !ok {
			return nil, ErrInvalidRange
		}
		return maze.Bomb{Piercing: tok[0] == 'S', Range: rng}, nil
	case 'D':
		if len(tok) != 2 {
			return nil, ErrInvalidDirection
		}
		d, ok := dirFromLetter(tok[1])
		if !ok {
			return nil, ErrInvalidDirection
		}
		return maze.Deflector{Dir: d}, nil
	default:
		return nil, ErrUnknownToken
	}
}

// Token returns the token for cell.
func Token(cell maze.Cell) (string, error) {
	switch c := cell.(type) {
	case maze.Empty:
		return "_", nil
	case maze.Wall:
		return "W", nil
	case maze.Rock:
		return "R", nil
	case *maze.Enemy:
		return "F" + strconv.Itoa(c.Health), nil
	case maze.Bomb:
		if c.Piercing {
			return "S" + strconv.Itoa(c.Range), nil
		}
		return "B" + strconv.Itoa(c.Range), nil
	case maze.Deflector:
		letter, ok := letterFromDir(c.Dir)
		if !ok {
			return "", fmt.Errorf("%w: deflector %v", ErrUnencodable, c.Dir)
		}
		return "D" + string(letter), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnencodable, cell)
	}
}

func exact(tok string, cell maze.Cell) (maze.Cell, error) {
	if len(tok) != 1 {
		return nil, ErrUnknownToken
	}
	return cell, nil
}

// parseRange accepts a non-empty run of decimal digits.
func parseRange(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func dirFromLetter(b byte) (maze.Dir, bool) {
	switch b {
	case 'U':
		return maze.DirUp, true
	case 'D':
		return maze.DirDown, true
	case 'L':
		return maze.DirLeft, true
	case 'R':
		return maze.DirRight, true
	default:
		return 0, false
	}
}

func letterFromDir(d maze.Dir) (byte, bool) {
	switch d {
	case maze.DirUp:
		return 'U', true
	case maze.DirDown:
		return 'D', true
	case maze.DirLeft:
		return 'L', true
	case maze.DirRight:
		return 'R', true
	default:
		return 0, false
	}
}
