// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Coordinate, Direction, Cell and Grid declarations plus sentinel errors.
// Policy:
//   - Coordinates are unsigned; positions below zero are never computed.
//   - Lookups report absence with a bool, mutations report failure with an error.

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a coordinate outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrSelfLink indicates an attempt to link a coordinate to itself.
	ErrSelfLink = errors.New("grid: cannot link a cell to itself")
)

// Coordinate identifies a cell by column and row. Row 0 is the southern edge,
// column 0 the western edge.
type Coordinate struct {
	Col uint
	Row uint
}

// At is shorthand for Coordinate{Col: col, Row: row}.
func At(col, row uint) Coordinate {
	return Coordinate{Col: col, Row: row}
}

// String renders the coordinate as "(col,row)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Direction is one of the four orthogonal compass directions.
type Direction uint8

const (
	// North moves to row+1.
	North Direction = iota
	// East moves to col+1.
	East
	// South moves to row-1.
	South
	// West moves to col-1.
	West
)

// Directions lists every Direction in N, E, S, W order.
func Directions() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Cell is the single concrete cell variant of a Grid. A cell carries no
// payload beyond its identity.
type Cell struct {
	coord Coordinate
}

// Coordinate returns the identity of the cell.
func (c Cell) Coordinate() Coordinate {
	return c.coord
}

// Grid is a height×width rectangle of cells connected by directed links.
//
// Dimensions and the cell set are fixed by New. Only Link and LinkBidi mutate
// a Grid; they are not safe for concurrent callers. Once generation has
// finished any number of goroutines may read the grid concurrently.
type Grid struct {
	height uint
	width  uint

	// cells holds one Cell per coordinate in row-major order (row*width + col).
	cells []Cell

	// links[from] lists link targets in insertion order.
	links map[Coordinate][]Coordinate
}
