// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options and resolved configuration for the generators.
// Contract:
//   - Option constructors validate and panic on meaningless input.
//     Generators themselves never panic.
//   - Determinism is explicit: pass WithSeed or WithRand to lock outcomes.
//     Without either, each call draws from a freshly time-seeded source.

package maze

import (
	"math/rand"
	"time"
)

// Option customizes a generator run.
type Option func(*config)

// config is the resolved per-call configuration. It is passed by value.
type config struct {
	// rng drives every coin flip and run-member choice of one call.
	rng *rand.Rand
}

// newConfig applies opts in order (last wins) over the defaults.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds a new source so that the same grid and seed always produce
// the same maze.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
