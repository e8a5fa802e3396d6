// SPDX-License-Identifier: MIT

// Package render rasterizes mazes to *image.RGBA, ready for png.Encode.
//
// Maze draws the walls alone. WithDistances shades each cell by its distance
// from a pathfind.Field origin. WithPath overlays a solution on a picture
// already drawn by Maze or WithDistances.
//
// Row 0 is drawn at the bottom of the picture, matching grid.Grid.String.
package render
