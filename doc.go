// Package mazegrid carves, solves and draws perfect mazes on rectangular
// grids.
//
// A perfect maze is a spanning tree over the cells of a grid: every cell is
// reachable and there is exactly one path between any two of them.
//
// Everything is organized under a few subpackages:
//
//	grid/      Coordinate, Direction and the Grid of cells with their links
//	maze/      Binary Tree and Sidewinder generators, Verify
//	pathfind/  breadth-first distance fields, shortest and longest paths
//	render/    PNG-ready pictures: walls, heat maps, solution overlays
//	config/    MAZE_* / MAZED_* settings from the environment and .env files
//	service/   gin HTTP endpoints serving generated mazes
//
// Binaries: cmd/mazegen prints one maze to the terminal, cmd/mazed serves
// them over HTTP.
//
// Quick example:
//
//	g, _ := maze.Sidewinder(grid.New(2, 2), maze.WithSeed(1))
//	fmt.Print(g)
//
// prints one of the possible 2×2 mazes, for instance:
//
//	+---+---+
//	|       |
//	+   +---+
//	|       |
//	+---+---+
//
// Row 0 is the bottom row; the ASCII view is drawn top-down.
package mazegrid
