// SPDX-License-Identifier: MIT
//
// File: verify.go
// Role: perfect-maze check for a carved grid.
//
// A grid is a perfect maze when its links form a spanning tree over the
// cells: every link is reciprocated and joins orthogonal neighbors, there
// are exactly N-1 corridors, and every cell is reachable from (0,0).
// N-1 corridors plus connectivity rules out cycles.

package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/pathfind"
)

// MethodVerify tags errors returned by Verify.
const MethodVerify = "Verify"

// Verify returns nil if g is a perfect maze. Grids with zero or one cell and
// no links are trivially perfect.
func Verify(g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("%s: %w", MethodVerify, ErrNilGrid)
	}

	for _, c := range g.Coordinates() {
		for _, t := range g.LinksOf(c) {
			if !g.IsLinked(t, c) {
				return fmt.Errorf("%s: %v→%v: %w", MethodVerify, c, t, ErrAsymmetricLink)
			}
			if !adjacent(g, c, t) {
				return fmt.Errorf("%s: %v→%v: %w", MethodVerify, c, t, ErrNotAdjacent)
			}
		}
	}

	n := g.Size()
	if n == 0 {
		return nil
	}
	if got := g.CorridorCount(); got != n-1 {
		return fmt.Errorf("%s: got %d corridors for %d cells: %w", MethodVerify, got, n, ErrCorridorCount)
	}

	field, err := pathfind.Build(g, grid.At(0, 0))
	if err != nil {
		return fmt.Errorf("%s: %w", MethodVerify, err)
	}
	if got := field.Reachable(); got != n {
		return fmt.Errorf("%s: %d of %d cells reachable: %w", MethodVerify, got, n, ErrDisconnected)
	}

	return nil
}

func adjacent(g *grid.Grid, a, b grid.Coordinate) bool {
	for _, nb := range g.Neighbors(a) {
		if nb == b {
			return true
		}
	}
	return false
}
