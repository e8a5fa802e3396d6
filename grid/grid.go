// SPDX-License-Identifier: MIT
//
// File: grid.go
// Role: Grid construction, bounds/neighbor queries, link mutation and iteration.
// Determinism:
//   - LinksOf preserves insertion order.
//   - Rows, RowsReverse, Coordinates and DeadEnds are row-major and stable.

package grid

import (
	"fmt"
	"math/rand"
)

// New creates a height×width grid with every cell present and no links.
// A zero height or width yields a valid, empty grid.
// Complexity: O(height*width) time and memory.
func New(height, width uint) *Grid {
	g := &Grid{
		height: height,
		width:  width,
		cells:  make([]Cell, 0, height*width),
		links:  make(map[Coordinate][]Coordinate),
	}
	for row := uint(0); row < height; row++ {
		for col := uint(0); col < width; col++ {
			g.cells = append(g.cells, Cell{coord: Coordinate{Col: col, Row: row}})
		}
	}

	return g
}

// Height returns the number of rows.
func (g *Grid) Height() uint { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() uint { return g.width }

// Size returns the number of cells, height*width.
func (g *Grid) Size() int { return len(g.cells) }

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Coordinate) bool {
	return c.Col < g.width && c.Row < g.height
}

// index maps an in-bounds coordinate to its row-major slot.
func (g *Grid) index(c Coordinate) int {
	return int(c.Row*g.width + c.Col)
}

// CellAt returns the cell at c, or false when c is outside the grid.
func (g *Grid) CellAt(c Coordinate) (Cell, bool) {
	if !g.Contains(c) {
		return Cell{}, false
	}
	return g.cells[g.index(c)], true
}

// NeighborIn returns the coordinate adjacent to c in direction dir.
// It reports false when c itself is outside the grid or when the neighbor
// would fall past an edge. South of row 0 and west of column 0 are never
// computed, so unsigned arithmetic cannot wrap.
func (g *Grid) NeighborIn(dir Direction, c Coordinate) (Coordinate, bool) {
	if !g.Contains(c) {
		return Coordinate{}, false
	}
	switch dir {
	case North:
		if c.Row+1 < g.height {
			return Coordinate{Col: c.Col, Row: c.Row + 1}, true
		}
	case East:
		if c.Col+1 < g.width {
			return Coordinate{Col: c.Col + 1, Row: c.Row}, true
		}
	case South:
		if c.Row > 0 {
			return Coordinate{Col: c.Col, Row: c.Row - 1}, true
		}
	case West:
		if c.Col > 0 {
			return Coordinate{Col: c.Col - 1, Row: c.Row}, true
		}
	}

	return Coordinate{}, false
}

// Neighbors returns the present neighbors of c in N, E, S, W order.
func (g *Grid) Neighbors(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, 4)
	for _, dir := range Directions() {
		if n, ok := g.NeighborIn(dir, c); ok {
			out = append(out, n)
		}
	}
	return out
}

// LinksOf returns the targets reachable from c in one hop, in the order the
// links were added. The returned slice is a copy.
func (g *Grid) LinksOf(c Coordinate) []Coordinate {
	targets := g.links[c]
	out := make([]Coordinate, len(targets))
	copy(out, targets)
	return out
}

// IsLinked reports whether the directed link from→to exists.
func (g *Grid) IsLinked(from, to Coordinate) bool {
	for _, t := range g.links[from] {
		if t == to {
			return true
		}
	}
	return false
}

// IsCorridor reports whether a and b are linked in both directions. Both the
// ASCII view and the raster renderer open a wall only for a corridor.
func (g *Grid) IsCorridor(a, b Coordinate) bool {
	return g.IsLinked(a, b) && g.IsLinked(b, a)
}

// Link adds the directed link src→dst. Linking an existing pair is a no-op.
//
// Errors:
//   - ErrOutOfBounds if either coordinate lies outside the grid.
//   - ErrSelfLink if src == dst.
func (g *Grid) Link(src, dst Coordinate) error {
	if err := g.checkLink(src, dst); err != nil {
		return err
	}
	g.addLink(src, dst)
	return nil
}

// LinkBidi links src→dst and dst→src. Both endpoints are validated before
// anything is written, so on error the grid is unchanged.
func (g *Grid) LinkBidi(src, dst Coordinate) error {
	if err := g.checkLink(src, dst); err != nil {
		return err
	}
	g.addLink(src, dst)
	g.addLink(dst, src)
	return nil
}

func (g *Grid) checkLink(src, dst Coordinate) error {
	if !g.Contains(src) {
		return fmt.Errorf("link %v→%v: source %v: %w", src, dst, src, ErrOutOfBounds)
	}
	if !g.Contains(dst) {
		return fmt.Errorf("link %v→%v: destination %v: %w", src, dst, dst, ErrOutOfBounds)
	}
	if src == dst {
		return fmt.Errorf("link %v: %w", src, ErrSelfLink)
	}
	return nil
}

func (g *Grid) addLink(src, dst Coordinate) {
	if g.IsLinked(src, dst) {
		return
	}
	g.links[src] = append(g.links[src], dst)
}

// Rows returns every coordinate grouped by row: row 0 first, and columns
// ascending within a row.
func (g *Grid) Rows() [][]Coordinate {
	rows := make([][]Coordinate, 0, g.height)
	for row := uint(0); row < g.height; row++ {
		rows = append(rows, g.row(row))
	}
	return rows
}

// RowsReverse is Rows with the topmost row first, the order a top-down
// rendering reads the grid in.
func (g *Grid) RowsReverse() [][]Coordinate {
	rows := make([][]Coordinate, 0, g.height)
	for row := g.height; row > 0; row-- {
		rows = append(rows, g.row(row-1))
	}
	return rows
}

func (g *Grid) row(row uint) []Coordinate {
	start := int(row * g.width)
	out := make([]Coordinate, 0, g.width)
	for _, cell := range g.cells[start : start+int(g.width)] {
		out = append(out, cell.coord)
	}
	return out
}

// Coordinates returns every coordinate in row-major order.
func (g *Grid) Coordinates() []Coordinate {
	out := make([]Coordinate, 0, len(g.cells))
	for _, cell := range g.cells {
		out = append(out, cell.coord)
	}
	return out
}

// RandCell picks one of the grid's coordinates uniformly at random from r.
// A nil r falls back to the math/rand package source. It reports false on an
// empty grid.
func (g *Grid) RandCell(r *rand.Rand) (Coordinate, bool) {
	if len(g.cells) == 0 {
		return Coordinate{}, false
	}
	var i int
	if r != nil {
		i = r.Intn(len(g.cells))
	} else {
		i = rand.Intn(len(g.cells))
	}
	return g.cells[i].coord, true
}

// CorridorCount returns the number of undirected corridors: unordered pairs
// {a,b} linked in both directions.
// Complexity: O(E*d) where d is the largest out-degree.
func (g *Grid) CorridorCount() int {
	n := 0
	for from, targets := range g.links {
		for _, to := range targets {
			if g.index(from) < g.index(to) && g.IsCorridor(from, to) {
				n++
			}
		}
	}
	return n
}

// DeadEnds returns, in row-major order, the cells with exactly one link.
func (g *Grid) DeadEnds() []Coordinate {
	var out []Coordinate
	for _, cell := range g.cells {
		if len(g.links[cell.coord]) == 1 {
			out = append(out, cell.coord)
		}
	}
	return out
}
