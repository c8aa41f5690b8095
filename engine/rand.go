package engine

import (
	"math/rand"
	"time"
)

// Rand is the randomness source for spawn angles and bounce perturbation.
// *rand.Rand satisfies it; tests inject a seeded or scripted source.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source, seeding from the clock when seed is 0
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
