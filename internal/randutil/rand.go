// Package randutil builds the deterministic random sources used for decks
// and random deciders.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Stream returns an independent generator for the n-th consumer of a seed,
// such as one table among many in a simulation.
func Stream(seed int64, n int) *rand.Rand {
	u := uint64(seed) + uint64(n+1)*goldenRatio64
	return rand.New(rand.NewPCG(mix(u), mix(^u)))
}

// Seed returns seed unchanged when it is non-zero, otherwise a seed taken
// from the wall clock. Callers log the result so a run can be replayed.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
