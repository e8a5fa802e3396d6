// SPDX-License-Identifier: MIT
//
// File: field.go
// Role: breadth-first construction of a distance Field.
// Determinism:
//   - Neighbors are expanded in grid.LinksOf order, so Order() is stable for
//     a given grid and origin.

package pathfind

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// walker encapsulates the mutable state of one breadth-first sweep.
type walker struct {
	g       *grid.Grid
	queue   []grid.Coordinate
	visited map[grid.Coordinate]bool
	field   *Field
}

// Build computes the distance field of g from origin. Links are unweighted,
// so a FIFO frontier yields shortest hop counts. Coordinates with no path from
// origin are simply absent from the result.
//
// Errors:
//   - ErrNilGrid if g is nil.
//   - grid.ErrOutOfBounds if origin lies outside g.
//
// Complexity: O(V+E) time and memory.
func Build(g *grid.Grid, origin grid.Coordinate) (*Field, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.Contains(origin) {
		return nil, fmt.Errorf("pathfind: origin %v: %w", origin, grid.ErrOutOfBounds)
	}

	n := g.Size()
	w := &walker{
		g:       g,
		queue:   make([]grid.Coordinate, 0, n),
		visited: make(map[grid.Coordinate]bool, n),
		field: &Field{
			origin: origin,
			dist:   make(map[grid.Coordinate]int, n),
			order:  make([]grid.Coordinate, 0, n),
		},
	}

	w.enqueue(origin, 0)
	w.loop()

	return w.field, nil
}

// enqueue records c at distance d and appends it to the frontier.
func (w *walker) enqueue(c grid.Coordinate, d int) {
	w.field.dist[c] = d
	w.queue = append(w.queue, c)
}

// loop drains the frontier in FIFO order.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		cur := w.dequeue()
		w.visited[cur] = true
		w.field.order = append(w.field.order, cur)

		next := w.field.dist[cur] + 1
		for _, nbr := range w.g.LinksOf(cur) {
			if w.visited[nbr] {
				continue
			}
			if _, seen := w.field.dist[nbr]; seen {
				continue
			}
			w.enqueue(nbr, next)
		}
	}
}

func (w *walker) dequeue() grid.Coordinate {
	c := w.queue[0]
	w.queue = w.queue[1:]
	return c
}
