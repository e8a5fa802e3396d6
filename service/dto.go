package service

// MazeQuery is the query string of GET /mazes/:algorithm. Pointers mark
// parameters that fall back to a default when absent.
type MazeQuery struct {
	Width  *uint  `form:"width"`
	Height *uint  `form:"height"`
	Seed   *int64 `form:"seed"`
	Format string `form:"format" binding:"omitempty,oneof=text png"`
	Solve  bool   `form:"solve"`
	Heat   bool   `form:"heat"`
}
