// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: drawing options and validation.

package render

import (
	"fmt"
	"image/color"
)

// Options controls the geometry and palette of rendered mazes.
type Options struct {
	// CellSize is the pixel pitch of one cell, wall line included. Minimum 3.
	CellSize int
	// Padding is the margin around the maze, in pixels.
	Padding int

	WallColor  color.RGBA
	Background color.RGBA
	// PathColor fills the cells of an overlaid path.
	PathColor color.RGBA
	// HeatColor is the shade of distance zero in a heat map. Farther cells
	// fade toward Background.
	HeatColor color.RGBA
}

// DefaultOptions returns 20px cells on a white 10px margin with black walls.
func DefaultOptions() Options {
	return Options{
		CellSize:   20,
		Padding:    10,
		WallColor:  color.RGBA{A: 255},
		Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		PathColor:  color.RGBA{R: 230, G: 20, B: 20, A: 255},
		HeatColor:  color.RGBA{R: 100, G: 120, B: 255, A: 255},
	}
}

func (o Options) validate() error {
	if o.CellSize < 3 {
		return fmt.Errorf("cell size %d below 3: %w", o.CellSize, ErrBadOptions)
	}
	if o.Padding < 0 {
		return fmt.Errorf("negative padding %d: %w", o.Padding, ErrBadOptions)
	}
	return nil
}
