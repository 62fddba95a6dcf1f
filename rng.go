package tspgenetic

import (
	"math/rand"
	"time"
)

// DEBUG enables permutation checks on the evaluation hot path.
const DEBUG = false

// NewRNG builds the random source the engine threads through shuffling,
// crossover cut points, and mutation coin-flips. A zero seed uses the
// current time (non-deterministic); any other seed gives reproducible runs.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
