package maze

import "math/rand"

// Coin is the outcome of a fair two-sided draw.
type Coin uint8

const (
	// Heads is one side of the coin.
	Heads Coin = iota
	// Tails is the other.
	Tails
)

func (c Coin) String() string {
	if c == Heads {
		return "heads"
	}
	return "tails"
}

// flip draws a fair coin from r.
func flip(r *rand.Rand) Coin {
	if r.Intn(2) == 0 {
		return Heads
	}
	return Tails
}
