package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegrid/grid"
)

func TestString_Unlinked(t *testing.T) {
	g := grid.New(2, 3)
	want := "" +
		"+---+---+---+\n" +
		"|   |   |   |\n" +
		"+---+---+---+\n" +
		"|   |   |   |\n" +
		"+---+---+---+\n"
	assert.Equal(t, want, g.String())
}

func TestString_Corridors(t *testing.T) {
	g := grid.New(2, 2)
	require.NoError(t, g.LinkBidi(grid.At(0, 0), grid.At(1, 0)))
	require.NoError(t, g.LinkBidi(grid.At(0, 0), grid.At(0, 1)))
	require.NoError(t, g.LinkBidi(grid.At(0, 1), grid.At(1, 1)))

	want := "" +
		"+---+---+\n" +
		"|       |\n" +
		"+   +---+\n" +
		"|       |\n" +
		"+---+---+\n"
	assert.Equal(t, want, g.String())
}

func TestString_OneWayLinkKeepsWall(t *testing.T) {
	want := "" +
		"+---+---+\n" +
		"|   |   |\n" +
		"+---+---+\n"

	for _, pair := range [][2]grid.Coordinate{
		{grid.At(1, 0), grid.At(0, 0)},
		{grid.At(0, 0), grid.At(1, 0)},
	} {
		g := grid.New(1, 2)
		require.NoError(t, g.Link(pair[0], pair[1]))
		assert.Equal(t, want, g.String(), "%v→%v", pair[0], pair[1])
	}

	g := grid.New(2, 1)
	require.NoError(t, g.Link(grid.At(0, 1), grid.At(0, 0)))
	assert.NotContains(t, g.String(), "+   +")
}

func TestString_Degenerate(t *testing.T) {
	assert.Equal(t, "+\n", grid.New(0, 0).String())
	assert.Equal(t, "+\n|\n+\n|\n+\n", grid.New(2, 0).String())
	assert.Equal(t, "+---+\n|   |\n+---+\n", grid.New(1, 1).String())
}

func TestString_Shape(t *testing.T) {
	g := grid.New(5, 4)
	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	require.Len(t, lines, 1+2*5)
	for _, line := range lines {
		assert.Len(t, line, 1+4*4)
	}
}
