// SPDX-License-Identifier: MIT
//
// File: sidewinder.go
// Role: Sidewinder maze generator.
//
// Contract:
//   • Rows are processed from row 0 upward; each row is split into runs.
//   • Outside the top row a run closes at the east edge, or on heads.
//     Closing links the run horizontally and opens one uniformly chosen
//     member to the north.
//   • The top row never closes early, so it becomes one horizontal corridor.
//
// Complexity: O(height*width) time, O(width) extra memory for the run.

package maze

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazegrid/grid"
)

// MethodSidewinder tags errors returned by Sidewinder.
const MethodSidewinder = "Sidewinder"

// Sidewinder carves a perfect maze into g and returns g.
// Existing links are kept; start from a fresh grid for a perfect maze.
func Sidewinder(g *grid.Grid, opts ...Option) (*grid.Grid, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", MethodSidewinder, ErrNilGrid)
	}
	cfg := newConfig(opts...)

	rows := g.Rows()
	for i, row := range rows {
		top := i == len(rows)-1
		run := make([]grid.Coordinate, 0, len(row))

		for _, c := range row {
			run = append(run, c)
			if top {
				continue
			}
			if _, hasEast := g.NeighborIn(grid.East, c); hasEast && flip(cfg.rng) == Tails {
				continue
			}
			if err := closeRun(g, run, cfg.rng); err != nil {
				return nil, fmt.Errorf("%s: %w", MethodSidewinder, err)
			}
			run = run[:0]
		}

		// only the top row can end with an open run
		if err := linkRun(g, run); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodSidewinder, err)
		}
	}

	return g, nil
}

// closeRun links run horizontally and opens one random member northward.
func closeRun(g *grid.Grid, run []grid.Coordinate, r *rand.Rand) error {
	if len(run) == 0 {
		return nil
	}
	if err := linkRun(g, run); err != nil {
		return err
	}
	member := run[r.Intn(len(run))]
	if north, ok := g.NeighborIn(grid.North, member); ok {
		return g.LinkBidi(member, north)
	}
	return nil
}

// linkRun joins each adjacent pair of the run.
func linkRun(g *grid.Grid, run []grid.Coordinate) error {
	for i := 1; i < len(run); i++ {
		if err := g.LinkBidi(run[i-1], run[i]); err != nil {
			return err
		}
	}
	return nil
}
