package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/maze"
)

func benchmarkGenerator(b *testing.B, gen maze.Generator) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := grid.New(100, 100)
		b.StartTimer()
		if _, err := gen(g, maze.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBinaryTree carves a 100×100 maze.
func BenchmarkBinaryTree(b *testing.B) { benchmarkGenerator(b, maze.BinaryTree) }

// BenchmarkSidewinder carves a 100×100 maze.
func BenchmarkSidewinder(b *testing.B) { benchmarkGenerator(b, maze.Sidewinder) }

// BenchmarkVerify checks a carved 100×100 maze.
func BenchmarkVerify(b *testing.B) {
	g, err := maze.Sidewinder(grid.New(100, 100), maze.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := maze.Verify(g); err != nil {
			b.Fatal(err)
		}
	}
}
