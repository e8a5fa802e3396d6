// SPDX-License-Identifier: MIT
//
// File: binarytree.go
// Role: Binary Tree maze generator.
//
// Contract:
//   • Every cell flips a coin: heads carves north (falling back to east),
//     tails carves east (falling back to north).
//   • Only the north-east corner, with neither neighbor, carves nothing.
//   • Each cell links only to its own north/east neighbor, so visiting order
//     does not affect the result for a fixed sequence of flips.
//
// Complexity: O(height*width) time, O(1) extra memory.

package maze

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// MethodBinaryTree tags errors returned by BinaryTree.
const MethodBinaryTree = "BinaryTree"

// BinaryTree carves a perfect maze into g and returns g. The output always
// has a fully open top row and east column, the algorithm's signature bias.
// Existing links are kept; start from a fresh grid for a perfect maze.
func BinaryTree(g *grid.Grid, opts ...Option) (*grid.Grid, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", MethodBinaryTree, ErrNilGrid)
	}
	cfg := newConfig(opts...)

	for _, c := range g.Coordinates() {
		north, hasNorth := g.NeighborIn(grid.North, c)
		east, hasEast := g.NeighborIn(grid.East, c)

		first, second := north, east
		hasFirst, hasSecond := hasNorth, hasEast
		if flip(cfg.rng) == Tails {
			first, second = east, north
			hasFirst, hasSecond = hasEast, hasNorth
		}

		var target grid.Coordinate
		switch {
		case hasFirst:
			target = first
		case hasSecond:
			target = second
		default:
			continue // north-east corner: the root of the tree
		}
		if err := g.LinkBidi(c, target); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBinaryTree, err)
		}
	}

	return g, nil
}
