package grid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegrid/grid"
)

// makeGrid returns the 10×10 fixture used across the grid tests.
func makeGrid() *grid.Grid {
	return grid.New(10, 10)
}

func TestNew_Dimensions(t *testing.T) {
	cases := []struct {
		name          string
		height, width uint
	}{
		{"10x10", 10, 10},
		{"3x7", 3, 7},
		{"1x1", 1, 1},
		{"ZeroHeight", 0, 4},
		{"ZeroWidth", 4, 0},
		{"Empty", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := grid.New(tc.height, tc.width)
			assert.Equal(t, tc.height, g.Height())
			assert.Equal(t, tc.width, g.Width())
			assert.Equal(t, int(tc.height*tc.width), g.Size())

			rows := g.Rows()
			require.Len(t, rows, int(tc.height))
			for r, row := range rows {
				require.Len(t, row, int(tc.width))
				for c, coord := range row {
					assert.Equal(t, grid.At(uint(c), uint(r)), coord)
				}
			}

			for row := uint(0); row < tc.height; row++ {
				for col := uint(0); col < tc.width; col++ {
					cell, ok := g.CellAt(grid.At(col, row))
					require.True(t, ok, "cell (%d,%d) missing", col, row)
					assert.Equal(t, grid.At(col, row), cell.Coordinate())
				}
			}
			assert.Zero(t, g.CorridorCount())
		})
	}
}

func TestCellAt_OutOfBounds(t *testing.T) {
	g := makeGrid()

	cell, ok := g.CellAt(grid.At(0, 0))
	require.True(t, ok)
	assert.Equal(t, grid.At(0, 0), cell.Coordinate())

	for _, c := range []grid.Coordinate{grid.At(10, 1), grid.At(1, 10), grid.At(10, 10)} {
		_, ok := g.CellAt(c)
		assert.False(t, ok, "CellAt(%v) should be absent", c)
	}
}

func TestNeighborIn_Edges(t *testing.T) {
	g := makeGrid()
	origin := grid.At(0, 0)

	_, ok := g.NeighborIn(grid.South, origin)
	assert.False(t, ok, "south of row 0")
	_, ok = g.NeighborIn(grid.West, origin)
	assert.False(t, ok, "west of col 0")

	n, ok := g.NeighborIn(grid.North, origin)
	require.True(t, ok)
	assert.Equal(t, grid.At(0, 1), n)
	e, ok := g.NeighborIn(grid.East, origin)
	require.True(t, ok)
	assert.Equal(t, grid.At(1, 0), e)

	corner := grid.At(9, 9)
	_, ok = g.NeighborIn(grid.North, corner)
	assert.False(t, ok, "north of top row")
	_, ok = g.NeighborIn(grid.East, corner)
	assert.False(t, ok, "east of last col")
	s, ok := g.NeighborIn(grid.South, corner)
	require.True(t, ok)
	assert.Equal(t, grid.At(9, 8), s)
	w, ok := g.NeighborIn(grid.West, corner)
	require.True(t, ok)
	assert.Equal(t, grid.At(8, 9), w)

	for _, dir := range grid.Directions() {
		_, ok := g.NeighborIn(dir, grid.At(42, 3))
		assert.False(t, ok, "%s of an out-of-bounds coordinate", dir)
	}
}

func TestNeighborIn_AbsentExactlyAtEdges(t *testing.T) {
	g := grid.New(4, 6)
	for _, c := range g.Coordinates() {
		_, north := g.NeighborIn(grid.North, c)
		_, east := g.NeighborIn(grid.East, c)
		_, south := g.NeighborIn(grid.South, c)
		_, west := g.NeighborIn(grid.West, c)
		assert.Equal(t, c.Row != 3, north, "north of %v", c)
		assert.Equal(t, c.Col != 5, east, "east of %v", c)
		assert.Equal(t, c.Row != 0, south, "south of %v", c)
		assert.Equal(t, c.Col != 0, west, "west of %v", c)
	}
}

func TestNeighbors_Order(t *testing.T) {
	g := grid.New(3, 3)
	assert.Equal(t,
		[]grid.Coordinate{grid.At(1, 2), grid.At(2, 1), grid.At(1, 0), grid.At(0, 1)},
		g.Neighbors(grid.At(1, 1)))
	assert.Equal(t,
		[]grid.Coordinate{grid.At(0, 1), grid.At(1, 0)},
		g.Neighbors(grid.At(0, 0)))
}

func TestLinkBidi(t *testing.T) {
	g := makeGrid()
	a := grid.At(0, 0)
	north, ok := g.NeighborIn(grid.North, a)
	require.True(t, ok)

	require.NoError(t, g.LinkBidi(a, north))

	assert.Equal(t, []grid.Coordinate{north}, g.LinksOf(a))
	assert.Equal(t, []grid.Coordinate{a}, g.LinksOf(north))
	assert.True(t, g.IsLinked(a, north))
	assert.True(t, g.IsLinked(north, a))
	assert.Equal(t, 1, g.CorridorCount())
}

func TestLink_DirectedAndIdempotent(t *testing.T) {
	g := grid.New(2, 2)
	a, b := grid.At(0, 0), grid.At(1, 0)

	require.NoError(t, g.Link(a, b))
	require.NoError(t, g.Link(a, b))
	assert.Equal(t, []grid.Coordinate{b}, g.LinksOf(a))
	assert.Empty(t, g.LinksOf(b))
	assert.Zero(t, g.CorridorCount(), "a one-way link is not a corridor")

	require.NoError(t, g.LinkBidi(a, b))
	assert.Equal(t, []grid.Coordinate{b}, g.LinksOf(a))
	assert.Equal(t, []grid.Coordinate{a}, g.LinksOf(b))
	assert.Equal(t, 1, g.CorridorCount())
}

func TestLinksOf_InsertionOrder(t *testing.T) {
	g := grid.New(3, 3)
	center := grid.At(1, 1)
	order := []grid.Coordinate{grid.At(2, 1), grid.At(1, 0), grid.At(1, 2), grid.At(0, 1)}
	for _, c := range order {
		require.NoError(t, g.Link(center, c))
	}
	assert.Equal(t, order, g.LinksOf(center))

	// the returned slice is a copy
	links := g.LinksOf(center)
	links[0] = grid.At(0, 0)
	assert.Equal(t, order, g.LinksOf(center))
}

func TestLink_Errors(t *testing.T) {
	g := grid.New(2, 3)
	cases := []struct {
		name     string
		src, dst grid.Coordinate
		err      error
	}{
		{"SourceOutOfBounds", grid.At(3, 0), grid.At(2, 0), grid.ErrOutOfBounds},
		{"DestinationOutOfBounds", grid.At(0, 1), grid.At(0, 2), grid.ErrOutOfBounds},
		{"SelfLink", grid.At(1, 1), grid.At(1, 1), grid.ErrSelfLink},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.Link(tc.src, tc.dst), tc.err)
			assert.ErrorIs(t, g.LinkBidi(tc.src, tc.dst), tc.err)
		})
	}
	for _, c := range g.Coordinates() {
		assert.Empty(t, g.LinksOf(c), "failed links must leave %v untouched", c)
	}
	assert.Empty(t, g.LinksOf(grid.At(5, 5)))
}

func TestRows_Order(t *testing.T) {
	g := grid.New(3, 2)

	rows := g.Rows()
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, []grid.Coordinate{grid.At(0, uint(i)), grid.At(1, uint(i))}, row)
	}

	rev := g.RowsReverse()
	require.Len(t, rev, 3)
	for i, row := range rev {
		r := uint(2 - i)
		assert.Equal(t, []grid.Coordinate{grid.At(0, r), grid.At(1, r)}, row)
	}

	assert.Equal(t, []grid.Coordinate{
		grid.At(0, 0), grid.At(1, 0),
		grid.At(0, 1), grid.At(1, 1),
		grid.At(0, 2), grid.At(1, 2),
	}, g.Coordinates())
}

func TestRandCell(t *testing.T) {
	g := makeGrid()
	r := rand.New(rand.NewSource(7))
	seen := make(map[grid.Coordinate]bool)
	for i := 0; i < 2000; i++ {
		c, ok := g.RandCell(r)
		require.True(t, ok)
		require.True(t, g.Contains(c), "RandCell returned %v", c)
		seen[c] = true
	}
	assert.Greater(t, len(seen), 90, "2000 draws should touch nearly every cell")

	// same seed, same sequence
	a, b := rand.New(rand.NewSource(99)), rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		ca, _ := g.RandCell(a)
		cb, _ := g.RandCell(b)
		assert.Equal(t, ca, cb)
	}

	c, ok := g.RandCell(nil)
	assert.True(t, ok)
	assert.True(t, g.Contains(c))

	_, ok = grid.New(0, 5).RandCell(r)
	assert.False(t, ok)
}

func TestDeadEnds(t *testing.T) {
	g := grid.New(1, 3)
	require.NoError(t, g.LinkBidi(grid.At(0, 0), grid.At(1, 0)))
	require.NoError(t, g.LinkBidi(grid.At(1, 0), grid.At(2, 0)))
	assert.Equal(t, []grid.Coordinate{grid.At(0, 0), grid.At(2, 0)}, g.DeadEnds())
	assert.Equal(t, 2, g.CorridorCount())
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "north", grid.North.String())
	assert.Equal(t, "east", grid.East.String())
	assert.Equal(t, "south", grid.South.String())
	assert.Equal(t, "west", grid.West.String())
	assert.Equal(t, "direction(9)", grid.Direction(9).String())
	assert.Equal(t, "(3,4)", grid.At(3, 4).String())
}

func TestIsCorridor(t *testing.T) {
	g := grid.New(1, 3)
	a, b, c := grid.At(0, 0), grid.At(1, 0), grid.At(2, 0)
	require.NoError(t, g.Link(a, b))
	require.NoError(t, g.LinkBidi(b, c))

	assert.False(t, g.IsCorridor(a, b))
	assert.False(t, g.IsCorridor(b, a))
	assert.True(t, g.IsCorridor(b, c))
	assert.True(t, g.IsCorridor(c, b))
	assert.Equal(t, 1, g.CorridorCount())
}
