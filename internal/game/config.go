package game

import (
	"math/rand"
	"time"

	"github.com/samdwyer/fortress/internal/sim"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible worlds.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Debug runs the simulation at the debug tick rate.
	Debug bool

	Tuning sim.Tuning
}

// DefaultConfig returns a random-seeded config with the default tuning.
func DefaultConfig() Config {
	return Config{Tuning: sim.DefaultTuning()}
}

// newRand returns the world's random source and the seed it was built from.
func (c Config) newRand() (*rand.Rand, int64) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
