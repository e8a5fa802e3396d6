// Command mazed serves generated mazes over HTTP.
//
// It reads MAZE_* and MAZED_* environment variables (and a .env file), then
// listens on MAZED_ADDR until interrupted.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazegrid/config"
	"github.com/katalvlaran/mazegrid/render"
	"github.com/katalvlaran/mazegrid/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}

	logger := log.New()
	logger.SetLevel(cfg.LogLevel)
	logger.SetFormatter(&log.JSONFormatter{})
	gin.SetMode(cfg.GinMode)

	opts := render.DefaultOptions()
	opts.CellSize = cfg.CellSize

	router := service.NewRouter(service.RouterConfig{
		Addr:    cfg.Addr,
		BaseURL: "/api",
		Logger:  logger,
		Controllers: []service.Controller{
			service.NewMazeController(service.MazeConfig{
				Logger:        logger,
				MaxDimension:  cfg.MaxDimension,
				DefaultWidth:  min(cfg.Width, cfg.MaxDimension),
				DefaultHeight: min(cfg.Height, cfg.MaxDimension),
				Render:        opts,
			}),
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := router.Run(ctx); err != nil {
		logger.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
