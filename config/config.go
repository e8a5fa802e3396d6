// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: environment-driven settings shared by the mazegen and mazed binaries.
//
// Variables may come from the process environment or from .env files, which
// never override variables already set. Invalid values are returned as
// errors wrapping ErrInvalidValue; nothing here exits the process.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazegrid/maze"
)

// Environment variable names.
const (
	EnvWidth        = "MAZE_WIDTH"
	EnvHeight       = "MAZE_HEIGHT"
	EnvAlgorithm    = "MAZE_ALGORITHM"
	EnvSeed         = "MAZE_SEED"
	EnvCellSize     = "MAZE_CELL_SIZE"
	EnvLogLevel     = "MAZE_LOG_LEVEL"
	EnvAddr         = "MAZED_ADDR"
	EnvMaxDimension = "MAZED_MAX_DIMENSION"
	EnvGinMode      = "GIN_MODE"
)

// ErrInvalidValue is wrapped by every parse failure.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the resolved settings.
type Config struct {
	Width     uint           // maze width in cells
	Height    uint           // maze height in cells
	Algorithm maze.Algorithm // generator to run
	Seed      int64          // RNG seed, meaningful only when HasSeed
	HasSeed   bool           // false means a time-seeded source
	CellSize  int            // PNG pixels per cell
	LogLevel  logrus.Level   // minimum level logged by the binaries

	Addr         string // listen address of mazed
	MaxDimension uint   // largest width or height mazed accepts
	GinMode      string // gin mode for mazed (debug, release, test)
}

// Default returns the settings used when no variable is set.
func Default() Config {
	return Config{
		Width:        10,
		Height:       10,
		Algorithm:    maze.AlgorithmSidewinder,
		CellSize:     20,
		LogLevel:     logrus.InfoLevel,
		Addr:         ":8080",
		MaxDimension: 100,
		GinMode:      "release",
	}
}

// Load reads the given .env files (".env" when none is named) into the
// environment and resolves a Config from it. A missing default .env is not
// an error; a missing file named explicitly is.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading env files: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv resolves a Config from the current environment alone. Unset or
// empty variables keep their Default value.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Width, err = getDimension(EnvWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getDimension(EnvHeight, cfg.Height); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvAlgorithm); ok {
		if cfg.Algorithm, err = maze.ParseAlgorithm(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w: %w", EnvAlgorithm, ErrInvalidValue, err)
		}
	}
	if v, ok := lookup(EnvSeed); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalidValue)
		}
		cfg.HasSeed = true
	}
	if v, ok := lookup(EnvCellSize); ok {
		if cfg.CellSize, err = strconv.Atoi(v); err != nil || cfg.CellSize < 3 {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvCellSize, v, ErrInvalidValue)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if cfg.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w: %w", EnvLogLevel, ErrInvalidValue, err)
		}
	}
	if v, ok := lookup(EnvAddr); ok {
		cfg.Addr = v
	}
	if cfg.MaxDimension, err = getDimension(EnvMaxDimension, cfg.MaxDimension); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvGinMode); ok {
		cfg.GinMode = v
	}

	return cfg, nil
}

// lookup treats an empty variable as unset.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// getDimension is getUint rejecting zero.
func getDimension(key string, def uint) (uint, error) {
	n, err := getUint(key, def)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%s=0: %w", key, ErrInvalidValue)
	}
	return n, nil
}

func getUint(key string, def uint) (uint, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, ErrInvalidValue)
	}
	return uint(n), nil
}
