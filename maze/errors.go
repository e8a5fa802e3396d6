// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the maze package.
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Context is attached with %w, prefixed by the algorithm or method name.

package maze

import "errors"

// ErrNilGrid is returned when a generator or Verify receives a nil grid.
var ErrNilGrid = errors.New("maze: grid is nil")

// ErrUnknownAlgorithm is returned by ParseAlgorithm and Generate for a name
// that matches no registered algorithm.
var ErrUnknownAlgorithm = errors.New("maze: unknown algorithm")

// ErrAsymmetricLink reports a link a→b without its reverse b→a.
var ErrAsymmetricLink = errors.New("maze: link is not reciprocated")

// ErrNotAdjacent reports a link between two cells that are not orthogonal
// neighbors.
var ErrNotAdjacent = errors.New("maze: link joins non-adjacent cells")

// ErrCorridorCount reports a corridor count different from cells-1, meaning
// the links contain a cycle or leave the grid disconnected.
var ErrCorridorCount = errors.New("maze: corridor count is not cells-1")

// ErrDisconnected reports a cell unreachable from (0,0).
var ErrDisconnected = errors.New("maze: grid is not connected")
