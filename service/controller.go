// SPDX-License-Identifier: MIT
//
// File: controller.go
// Role: maze generation endpoints.
//
//	GET <base>/v1/algorithms            list generator names, one per line
//	GET <base>/v1/mazes/:algorithm      carve, optionally solve, and draw a maze
//
// Query parameters of /mazes: width, height (1..MaxDimension), seed,
// format (text|png), solve, heat (png only).

package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/maze"
	"github.com/katalvlaran/mazegrid/pathfind"
	"github.com/katalvlaran/mazegrid/render"
)

// HeaderSeed reports the seed a maze was carved with, so any response can be
// reproduced by passing it back as ?seed=.
const HeaderSeed = "X-Maze-Seed"

const (
	formatText = "text"
	formatPNG  = "png"
)

var errBadDimension = errors.New("dimension out of range")

// MazeController serves generated mazes.
type MazeController struct {
	log           logrus.FieldLogger
	maxDimension  uint
	defaultWidth  uint
	defaultHeight uint
	render        render.Options
}

// MazeConfig holds the settings for NewMazeController.
type MazeConfig struct {
	Logger        logrus.FieldLogger
	MaxDimension  uint           // largest accepted width or height
	DefaultWidth  uint           // width when the query omits it
	DefaultHeight uint           // height when the query omits it
	Render        render.Options // PNG geometry and palette
}

// NewMazeController creates a MazeController.
func NewMazeController(config MazeConfig) *MazeController {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &MazeController{
		log:           log,
		maxDimension:  config.MaxDimension,
		defaultWidth:  config.DefaultWidth,
		defaultHeight: config.DefaultHeight,
		render:        config.Render,
	}
}

// RegisterPublic registers the maze routes.
func (c *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/algorithms", c.listAlgorithms)
	route.GET("/mazes/:algorithm", c.generate)
}

func (c *MazeController) listAlgorithms(ctx *gin.Context) {
	var b strings.Builder
	for _, alg := range maze.Algorithms() {
		b.WriteString(alg.String())
		b.WriteByte('\n')
	}
	ctx.String(http.StatusOK, b.String())
}

func (c *MazeController) generate(ctx *gin.Context) {
	alg, err := maze.ParseAlgorithm(ctx.Param("algorithm"))
	if err != nil {
		c.fail(ctx, http.StatusNotFound, err)
		return
	}

	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		c.fail(ctx, http.StatusBadRequest, err)
		return
	}
	width, height, err := c.dimensions(query)
	if err != nil {
		c.fail(ctx, http.StatusBadRequest, err)
		return
	}
	format := query.Format
	if format == "" {
		format = formatText
	}
	if query.Heat && format != formatPNG {
		c.fail(ctx, http.StatusBadRequest, errors.New("heat requires format=png"))
		return
	}
	seed := time.Now().UnixNano()
	if query.Seed != nil {
		seed = *query.Seed
	}

	g, err := maze.Generate(alg, grid.New(height, width), maze.WithSeed(seed))
	if err != nil {
		c.fail(ctx, http.StatusInternalServerError, err)
		return
	}
	c.log.WithFields(logrus.Fields{
		"request_id": ctx.GetString(ContextRequestID),
		"algorithm":  alg.String(),
		"width":      width,
		"height":     height,
		"seed":       seed,
	}).Debug("maze generated")

	var path []grid.Coordinate
	var field *pathfind.Field
	if query.Solve || query.Heat {
		if field, err = pathfind.Build(g, grid.At(0, 0)); err != nil {
			c.fail(ctx, http.StatusInternalServerError, err)
			return
		}
	}
	if query.Solve {
		if path, err = field.PathTo(g, grid.At(width-1, height-1)); err != nil {
			c.fail(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	ctx.Header(HeaderSeed, strconv.FormatInt(seed, 10))
	if format == formatText {
		ctx.String(http.StatusOK, textBody(g, path))
		return
	}

	body, err := c.pngBody(g, field, path, query.Heat)
	if err != nil {
		c.fail(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.Data(http.StatusOK, "image/png", body)
}

func (c *MazeController) dimensions(q MazeQuery) (uint, uint, error) {
	width, height := c.defaultWidth, c.defaultHeight
	if q.Width != nil {
		width = *q.Width
	}
	if q.Height != nil {
		height = *q.Height
	}
	for _, d := range []uint{width, height} {
		if d < 1 || d > c.maxDimension {
			return 0, 0, fmt.Errorf("%w: %d not in 1..%d", errBadDimension, d, c.maxDimension)
		}
	}
	return width, height, nil
}

func (c *MazeController) pngBody(g *grid.Grid, field *pathfind.Field, path []grid.Coordinate, heat bool) ([]byte, error) {
	var img *image.RGBA
	var err error
	if heat {
		img, err = render.WithDistances(g, field, c.render)
	} else {
		img, err = render.Maze(g, c.render)
	}
	if err != nil {
		return nil, err
	}
	if path != nil {
		if img, err = render.WithPath(img, g, path, c.render); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fail records err on the context for AccessLog and writes a JSON error.
func (c *MazeController) fail(ctx *gin.Context, status int, err error) {
	_ = ctx.Error(err)
	ctx.JSON(status, gin.H{"error": err.Error()})
}

// textBody is the ASCII maze, followed by the solution when path is set.
func textBody(g *grid.Grid, path []grid.Coordinate) string {
	if path == nil {
		return g.String()
	}
	steps := make([]string, len(path))
	for i, c := range path {
		steps[i] = c.String()
	}
	return fmt.Sprintf("%slength: %d\npath: %s\n", g.String(), len(path)-1, strings.Join(steps, " "))
}
