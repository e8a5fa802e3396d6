// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: shortest-path reconstruction from a Field, and the longest path of a maze.

package pathfind

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// PathTo reconstructs a shortest path from the field's origin to dest over
// g's links. The result is ordered origin first and dest last; when dest is
// the origin the path is the single coordinate [origin].
//
// The walk starts at dest and repeatedly steps to the unvisited linked
// neighbor with the smallest recorded distance, which must be strictly
// smaller than the current one. Ties go to the neighbor listed first by
// g.LinksOf. Corridors are expected to be reciprocal, as every generator in
// this module produces them.
//
// Errors:
//   - ErrNilGrid if g is nil.
//   - grid.ErrOutOfBounds if dest lies outside g.
//   - ErrUnreachable if dest has no recorded distance.
//   - ErrInconsistent if no strictly closer neighbor exists at some step,
//     e.g. because g's links changed after the field was built.
func (f *Field) PathTo(g *grid.Grid, dest grid.Coordinate) ([]grid.Coordinate, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.Contains(dest) {
		return nil, fmt.Errorf("pathfind: destination %v: %w", dest, grid.ErrOutOfBounds)
	}
	curDist, ok := f.dist[dest]
	if !ok {
		return nil, fmt.Errorf("pathfind: %v from %v: %w", dest, f.origin, ErrUnreachable)
	}

	path := []grid.Coordinate{dest}
	visited := map[grid.Coordinate]bool{dest: true}
	cur := dest
	for cur != f.origin {
		next, best, found := cur, curDist, false
		for _, nbr := range g.LinksOf(cur) {
			if visited[nbr] {
				continue
			}
			d, ok := f.dist[nbr]
			if !ok {
				continue
			}
			if d < best {
				next, best, found = nbr, d, true
			}
		}
		if !found {
			return nil, fmt.Errorf("pathfind: no step closer than %d from %v: %w", curDist, cur, ErrInconsistent)
		}
		visited[next] = true
		path = append(path, next)
		cur, curDist = next, best
	}

	// walked dest → origin; present origin → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// LongestPath returns a longest shortest-path of g. It sweeps once from (0,0)
// to find the farthest cell, sweeps again from there, and reconstructs the
// path to the second sweep's farthest cell. On a perfect maze this is the
// maze's diameter; on a disconnected grid it stays within the component of
// (0,0).
//
// Errors: ErrNilGrid, ErrEmptyGrid.
func LongestPath(g *grid.Grid) ([]grid.Coordinate, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Size() == 0 {
		return nil, ErrEmptyGrid
	}

	first, err := Build(g, grid.At(0, 0))
	if err != nil {
		return nil, err
	}
	start, _ := first.Max()

	second, err := Build(g, start)
	if err != nil {
		return nil, err
	}
	goal, _ := second.Max()

	return second.PathTo(g, goal)
}
