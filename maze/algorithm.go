// SPDX-License-Identifier: MIT
//
// File: algorithm.go
// Role: name-based dispatch over the available generators.

package maze

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazegrid/grid"
)

// Algorithm names a maze generator.
type Algorithm string

const (
	// AlgorithmBinaryTree selects BinaryTree.
	AlgorithmBinaryTree Algorithm = "binarytree"
	// AlgorithmSidewinder selects Sidewinder.
	AlgorithmSidewinder Algorithm = "sidewinder"
)

// Generator is the common signature of BinaryTree and Sidewinder.
type Generator func(g *grid.Grid, opts ...Option) (*grid.Grid, error)

var generators = map[Algorithm]Generator{
	AlgorithmBinaryTree: BinaryTree,
	AlgorithmSidewinder: Sidewinder,
}

// String returns the canonical name.
func (a Algorithm) String() string { return string(a) }

// Algorithms lists every registered algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBinaryTree, AlgorithmSidewinder}
}

// ParseAlgorithm resolves a user-supplied name. Matching ignores case and
// the separators '-', '_' and ' ', so "Binary-Tree" selects AlgorithmBinaryTree.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	alg := Algorithm(key)
	if _, ok := generators[alg]; !ok {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
	return alg, nil
}

// Generate runs the generator registered under alg on g.
func Generate(alg Algorithm, g *grid.Grid, opts ...Option) (*grid.Grid, error) {
	gen, ok := generators[alg]
	if !ok {
		return nil, fmt.Errorf("%q: %w", string(alg), ErrUnknownAlgorithm)
	}
	return gen(g, opts...)
}
