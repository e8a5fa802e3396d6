// SPDX-License-Identifier: MIT
//
// File: ascii.go
// Role: text view of a Grid, drawn top-down.

package grid

import "strings"

const (
	corner   = "+"
	vertWall = "|"
	horzWall = "---"
	interior = "   "
	opening  = " "
)

// String draws the grid as ASCII art with the topmost row first.
//
// The first line is the northern border. Each row then contributes an
// interior line, where a cell's western side is a wall unless it forms a
// corridor with its west neighbor, and a wall line, where the southern side
// is a wall unless the cell forms a corridor with its south neighbor. A
// one-way link leaves the wall standing. The eastern border closes every
// interior line.
func (g *Grid) String() string {
	var b strings.Builder

	b.WriteString(corner)
	b.WriteString(strings.Repeat(horzWall+corner, int(g.width)))
	b.WriteByte('\n')

	for _, row := range g.RowsReverse() {
		var top, bottom strings.Builder
		for _, c := range row {
			if w, ok := g.NeighborIn(West, c); ok && g.IsCorridor(c, w) {
				top.WriteString(opening)
			} else {
				top.WriteString(vertWall)
			}
			top.WriteString(interior)

			bottom.WriteString(corner)
			if s, ok := g.NeighborIn(South, c); ok && g.IsCorridor(c, s) {
				bottom.WriteString(interior)
			} else {
				bottom.WriteString(horzWall)
			}
		}
		top.WriteString(vertWall)
		bottom.WriteString(corner)

		b.WriteString(top.String())
		b.WriteByte('\n')
		b.WriteString(bottom.String())
		b.WriteByte('\n')
	}

	return b.String()
}
