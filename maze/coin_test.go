package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlip_BothSides(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	seen := map[Coin]int{}
	for i := 0; i < 1000; i++ {
		seen[flip(r)]++
	}
	assert.Len(t, seen, 2)
	assert.InDelta(t, 500, seen[Heads], 100)
	assert.Equal(t, 1000, seen[Heads]+seen[Tails])
}

func TestCoin_String(t *testing.T) {
	assert.Equal(t, "heads", Heads.String())
	assert.Equal(t, "tails", Tails.String())
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := newConfig()
	assert.NotNil(t, cfg.rng)

	r := rand.New(rand.NewSource(1))
	cfg = newConfig(WithSeed(5), WithRand(r))
	assert.Same(t, r, cfg.rng, "last option wins")
}
