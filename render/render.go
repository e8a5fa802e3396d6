// SPDX-License-Identifier: MIT
//
// File: render.go
// Role: public drawing entry points.

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/pathfind"
)

// Sentinel errors.
var (
	ErrNilGrid    = errors.New("render: grid is nil")
	ErrNilField   = errors.New("render: distance field is nil")
	ErrNilImage   = errors.New("render: base image is nil")
	ErrBadOptions = errors.New("render: invalid options")
	// ErrBrokenPath reports consecutive path cells without a corridor
	// between them.
	ErrBrokenPath = errors.New("render: path steps through a wall")
)

// Maze draws the walls of g.
func Maze(g *grid.Grid, opts Options) (*image.RGBA, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return image_utils.ToRGBA(newPicture(g, opts)), nil
}

// WithDistances draws g with every reachable cell shaded by its distance in
// field: HeatColor at the origin fading linearly toward Background at the
// farthest cell. Unreachable cells keep the Background.
func WithDistances(g *grid.Grid, field *pathfind.Field, opts Options) (*image.RGBA, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if field == nil {
		return nil, ErrNilField
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	maxDist := field.MaxDistance()
	pic := newPicture(g, opts)
	pic.fill = func(c grid.Coordinate) color.Color {
		d, ok := field.Distance(c)
		if !ok {
			return opts.Background
		}
		t := 1.0
		if maxDist > 0 {
			t = 1 - float64(d)/float64(maxDist)
		}
		return blend(opts.Background, opts.HeatColor, t)
	}

	return image_utils.ToRGBA(pic), nil
}

// WithPath overlays path on base, a picture of g previously drawn with the
// same opts. Each cell gets a centered square marker and consecutive cells
// are joined through their shared corridor. base is left untouched.
func WithPath(base *image.RGBA, g *grid.Grid, path []grid.Coordinate, opts Options) (*image.RGBA, error) {
	if base == nil {
		return nil, ErrNilImage
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	pic := newPicture(g, opts)
	composite := image_utils.NewCompositeImage()
	if err := composite.AddImage(base, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: base layer: %w", err)
	}

	marker := opts.CellSize / 2
	half := marker / 2
	for i, c := range path {
		if !g.Contains(c) {
			return nil, fmt.Errorf("render: path cell %v: %w", c, grid.ErrOutOfBounds)
		}
		from := pic.center(c)
		to := from
		if i > 0 {
			prev := path[i-1]
			if !g.IsLinked(prev, c) || !isNeighbor(g, prev, c) {
				return nil, fmt.Errorf("render: %v→%v: %w", prev, c, ErrBrokenPath)
			}
			to = pic.center(prev)
		}
		r := image.Rectangle{Min: from, Max: to}.Canon()
		r = image.Rect(r.Min.X-half, r.Min.Y-half, r.Max.X-half+marker, r.Max.Y-half+marker)

		if err := composite.AddImage(solid(r.Dx(), r.Dy(), opts.PathColor), r.Min); err != nil {
			return nil, fmt.Errorf("render: path cell %v: %w", c, err)
		}
	}

	return image_utils.ToRGBA(composite), nil
}

func isNeighbor(g *grid.Grid, a, b grid.Coordinate) bool {
	for _, n := range g.Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}

// solid returns a w×h picture filled with c.
func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

// blend mixes from toward to by t in [0,1].
func blend(from, to color.RGBA, t float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}
