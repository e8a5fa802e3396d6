// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors and the Field (distance field) result type.

package pathfind

import (
	"errors"

	"github.com/katalvlaran/mazegrid/grid"
)

// Sentinel errors for distance fields and path reconstruction.
var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrEmptyGrid is returned by LongestPath on a grid without cells.
	ErrEmptyGrid = errors.New("pathfind: grid has no cells")

	// ErrUnreachable is returned when the destination has no recorded distance.
	ErrUnreachable = errors.New("pathfind: destination unreachable from origin")

	// ErrInconsistent is returned when path reconstruction finds no strictly
	// closer neighbor before reaching the origin, which happens when the field
	// is stale relative to the grid it is queried against.
	ErrInconsistent = errors.New("pathfind: distance field inconsistent with grid")
)

// Field holds the hop count from one origin to every coordinate reachable
// through a grid's links. A Field is immutable and keeps no reference to the
// grid it was built from; rebuild it after the grid's links change.
type Field struct {
	origin grid.Coordinate
	dist   map[grid.Coordinate]int
	order  []grid.Coordinate
}

// Origin returns the coordinate the field was built from.
func (f *Field) Origin() grid.Coordinate { return f.origin }

// Distance returns the hop count from the origin to c. It reports false when
// c is unreachable.
func (f *Field) Distance(c grid.Coordinate) (int, bool) {
	d, ok := f.dist[c]
	return d, ok
}

// Reachable returns how many coordinates have a distance, the origin included.
func (f *Field) Reachable() int { return len(f.dist) }

// Order returns the coordinates in the order the breadth-first sweep
// expanded them, origin first.
func (f *Field) Order() []grid.Coordinate {
	out := make([]grid.Coordinate, len(f.order))
	copy(out, f.order)
	return out
}

// Max returns the farthest coordinate from the origin and its distance. Ties
// resolve to the coordinate expanded first.
func (f *Field) Max() (grid.Coordinate, int) {
	far, maxDist := f.origin, 0
	for _, c := range f.order {
		if d := f.dist[c]; d > maxDist {
			far, maxDist = c, d
		}
	}
	return far, maxDist
}

// MaxDistance returns the largest distance in the field.
func (f *Field) MaxDistance() int {
	_, d := f.Max()
	return d
}
