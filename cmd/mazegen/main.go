// Command mazegen carves one maze and prints it as ASCII, optionally solving
// it and writing a PNG.
//
// Settings come from MAZE_* environment variables (and a .env file); flags
// override them.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazegrid/config"
	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/maze"
	"github.com/katalvlaran/mazegrid/pathfind"
	"github.com/katalvlaran/mazegrid/render"
)

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Error("loading configuration")
		return 1
	}

	var width, height uint
	var algorithm, outFilename string
	var seed int64
	var cellSize int
	var solve, longest, heat bool
	flag.UintVar(&width, "width", cfg.Width, "The width of the maze, in cells.")
	flag.UintVar(&height, "height", cfg.Height, "The height of the maze, in cells.")
	flag.StringVar(&algorithm, "algorithm", cfg.Algorithm.String(),
		"The generator to use: "+algorithmNames()+".")
	flag.Int64Var(&seed, "seed", cfg.Seed,
		"The random seed. A time-based seed is used when neither this nor MAZE_SEED is set.")
	flag.BoolVar(&solve, "solve", false,
		"If set, solves the maze from (0,0) to the opposite corner.")
	flag.BoolVar(&longest, "longest", false,
		"If set, solves the longest path in the maze instead.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of an optional .png file to which the maze will be saved.")
	flag.IntVar(&cellSize, "cell_size", cfg.CellSize, "PNG pixels per cell.")
	flag.BoolVar(&heat, "heat", false,
		"If set, shades the PNG by distance from (0,0).")
	flag.Parse()

	log.SetLevel(cfg.LogLevel)
	if width < 1 || height < 1 {
		log.Error("width and height must be at least 1")
		return 1
	}
	alg, err := maze.ParseAlgorithm(algorithm)
	if err != nil {
		log.WithError(err).Error("invalid -algorithm")
		return 1
	}
	if !cfg.HasSeed && !flagSet("seed") {
		seed = time.Now().UnixNano()
	}

	fields := log.Fields{"algorithm": alg, "width": width, "height": height, "seed": seed}
	g, err := maze.Generate(alg, grid.New(height, width), maze.WithSeed(seed))
	if err != nil {
		log.WithFields(fields).WithError(err).Error("generating maze")
		return 1
	}
	log.WithFields(fields).WithField("dead_ends", len(g.DeadEnds())).Info("maze generated")
	fmt.Print(g)

	var path []grid.Coordinate
	switch {
	case longest:
		path, err = pathfind.LongestPath(g)
	case solve:
		path, err = solveCorners(g)
	}
	if err != nil {
		log.WithError(err).Error("solving maze")
		return 1
	}
	if path != nil {
		fmt.Printf("length: %d\npath: %s\n", len(path)-1, joinPath(path))
	}

	if outFilename == "" {
		return 0
	}
	opts := render.DefaultOptions()
	opts.CellSize = cellSize
	pic, err := draw(g, path, heat, opts)
	if err != nil {
		log.WithError(err).Error("drawing maze")
		return 1
	}
	f, err := os.Create(outFilename)
	if err != nil {
		log.WithError(err).Errorf("creating %s", outFilename)
		return 1
	}
	if err := writePNG(f, pic); err != nil {
		log.WithError(err).Errorf("writing %s", outFilename)
		return 1
	}
	log.Infof("image %s written", outFilename)
	return 0
}

// writePNG encodes img to w and closes it. A failed Close is reported like a
// failed write, since buffered bytes may not have reached the file.
func writePNG(w io.WriteCloser, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func solveCorners(g *grid.Grid) ([]grid.Coordinate, error) {
	field, err := pathfind.Build(g, grid.At(0, 0))
	if err != nil {
		return nil, err
	}
	return field.PathTo(g, grid.At(g.Width()-1, g.Height()-1))
}

func draw(g *grid.Grid, path []grid.Coordinate, heat bool, opts render.Options) (*image.RGBA, error) {
	var pic *image.RGBA
	var err error
	if heat {
		var field *pathfind.Field
		if field, err = pathfind.Build(g, grid.At(0, 0)); err != nil {
			return nil, err
		}
		pic, err = render.WithDistances(g, field, opts)
	} else {
		pic, err = render.Maze(g, opts)
	}
	if err != nil || path == nil {
		return pic, err
	}
	return render.WithPath(pic, g, path, opts)
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func algorithmNames() string {
	names := make([]string, 0, len(maze.Algorithms()))
	for _, a := range maze.Algorithms() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}

func joinPath(path []grid.Coordinate) string {
	steps := make([]string, len(path))
	for i, c := range path {
		steps[i] = c.String()
	}
	return strings.Join(steps, " ")
}

func main() {
	log.SetOutput(os.Stderr)
	os.Exit(run())
}
