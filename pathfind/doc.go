// Package pathfind computes distance fields and shortest paths over the links
// of a grid.Grid.
//
// Links carry no weight, so Dijkstra's algorithm degenerates to a
// breadth-first sweep: Build expands a FIFO frontier from an origin and
// records the hop count of every reachable coordinate. Absence from the field
// means "unreachable", not an error.
//
// Path convention:
//
//	Field.PathTo returns coordinates origin first, destination last.
//
// Complexity:
//
//   - Build:       O(V+E) time and memory.
//   - PathTo:      O(L·d), L = path length, d = max out-degree (≤ 4 in a maze).
//   - LongestPath: two sweeps plus one reconstruction, O(V+E).
//
// Errors:
//
//   - ErrNilGrid, ErrEmptyGrid: invalid input grid.
//   - grid.ErrOutOfBounds:      origin/destination outside the grid.
//   - ErrUnreachable:           destination has no recorded distance.
//   - ErrInconsistent:          the field is stale relative to the grid.
//
// A Field is a value object. It does not track later changes to the grid, so
// callers rebuild it after mutating links.
package pathfind
