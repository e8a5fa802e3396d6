// SPDX-License-Identifier: MIT
//
// File: layout.go
// Role: lazily evaluated maze picture satisfying image.Image.
//
// Geometry: cell (col,row) owns the square whose top-left pixel is
// (Padding + col*CellSize, Padding + (height-1-row)*CellSize), so row 0 sits
// at the bottom of the picture. Wall lines are one pixel wide and shared by
// neighboring cells; the east and south borders add one final line.

package render

import (
	"image"
	"image/color"

	"github.com/katalvlaran/mazegrid/grid"
)

// picture draws walls over a per-cell fill. It is rasterized once through
// image_utils.ToRGBA, so At is only ever called per pixel of the result.
type picture struct {
	g    *grid.Grid
	opts Options
	// fill colors a cell's interior; nil means Background.
	fill func(grid.Coordinate) color.Color
}

func newPicture(g *grid.Grid, opts Options) *picture {
	return &picture{g: g, opts: opts}
}

func (p *picture) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *picture) Bounds() image.Rectangle {
	w := 2*p.opts.Padding + int(p.g.Width())*p.opts.CellSize + 1
	h := 2*p.opts.Padding + int(p.g.Height())*p.opts.CellSize + 1
	return image.Rect(0, 0, w, h)
}

func (p *picture) At(x, y int) color.Color {
	if !image.Pt(x, y).In(p.Bounds()) {
		return color.Transparent
	}
	size := p.opts.CellSize
	lx, ly := x-p.opts.Padding, y-p.opts.Padding
	cols, rows := int(p.g.Width()), int(p.g.Height())
	if lx < 0 || ly < 0 || lx > cols*size || ly > rows*size {
		return p.opts.Background
	}

	onV, onH := lx%size == 0, ly%size == 0
	i, j := lx/size, ly/size // vertical and horizontal line (or cell) indices
	switch {
	case onV && onH:
		return p.opts.WallColor
	case onV:
		if p.wallBetween(i-1, j, i, j) {
			return p.opts.WallColor
		}
		return p.opts.Background
	case onH:
		if p.wallBetween(i, j-1, i, j) {
			return p.opts.WallColor
		}
		return p.opts.Background
	}

	if p.fill == nil {
		return p.opts.Background
	}
	return p.fill(p.cellAt(i, j))
}

// cellAt maps picture cell indices (column, row counted from the top) to a
// grid coordinate.
func (p *picture) cellAt(i, j int) grid.Coordinate {
	return grid.At(uint(i), p.g.Height()-1-uint(j))
}

// wallBetween reports whether a wall separates the two picture cells. A
// missing cell on either side means an outer border; otherwise only a
// two-way corridor opens the wall, as in grid.Grid.String.
func (p *picture) wallBetween(i1, j1, i2, j2 int) bool {
	cols, rows := int(p.g.Width()), int(p.g.Height())
	for _, ij := range [][2]int{{i1, j1}, {i2, j2}} {
		if ij[0] < 0 || ij[1] < 0 || ij[0] >= cols || ij[1] >= rows {
			return true
		}
	}
	return !p.g.IsCorridor(p.cellAt(i1, j1), p.cellAt(i2, j2))
}

// center returns the middle pixel of c's square.
func (p *picture) center(c grid.Coordinate) image.Point {
	size := p.opts.CellSize
	i, j := int(c.Col), int(p.g.Height()-1-c.Row)
	return image.Pt(p.opts.Padding+i*size+size/2, p.opts.Padding+j*size+size/2)
}
