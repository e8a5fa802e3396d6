// SPDX-License-Identifier: MIT

// Package maze carves perfect mazes into a grid.Grid.
//
// Two generators are provided, both linear in the number of cells:
//
//   - BinaryTree: each cell opens north or east on a coin flip. The top row
//     and the east column always come out as straight corridors.
//   - Sidewinder: each row is split into horizontal runs and every closed
//     run opens a single random member north. Only the top row is forced
//     into one corridor.
//
// Both mutate the grid in place, return it for chaining and, on a fresh grid,
// produce a spanning tree: exactly one path between any two cells.
//
// Randomness is injected with WithSeed or WithRand. The same grid shape and
// seed always give the same maze:
//
//	g, err := maze.Sidewinder(grid.New(10, 10), maze.WithSeed(42))
//
// Algorithm, ParseAlgorithm and Generate select a generator by name, and
// Verify checks the perfect-maze property of any grid.
package maze
