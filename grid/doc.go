// Package grid models a rectangular maze grid as a graph of uniquely-addressed
// cells joined by directed links.
//
// What:
//
//   - Coordinate (col,row) is the only cell identity; row 0 is the south edge.
//   - Grid owns exactly one cell per coordinate in [0,width)×[0,height).
//   - Links are directed and insertion-ordered; LinkBidi adds a corridor.
//   - Rows/RowsReverse return value sequences rather than callbacks.
//   - String renders the classic "+---+" ASCII view.
//
// Boundaries:
//
//	NeighborIn never wraps. North/east are bounded by height/width, and
//	south/west stop at zero, so (0,0) has no south or west neighbor.
//
// Errors:
//
//   - ErrOutOfBounds: Link/LinkBidi with a coordinate outside the grid.
//   - ErrSelfLink:    Link/LinkBidi from a coordinate to itself.
//
// Lookups (CellAt, NeighborIn, LinksOf) report absence instead of failing.
//
// Concurrency:
//
//	A Grid is mutated only by Link and LinkBidi, which need external
//	synchronization. Reads are safe from many goroutines once mutation stops.
package grid
