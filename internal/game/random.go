package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// SeededRNG returns a deterministic generator. Hunts use it so a seed can
// replay the same draws.
func SeededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible draws.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "draw"), seedWord(seed, "shiny")))
}

// NewRNG seeds from the wall clock when seed is zero.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return SeededRNG(seed)
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
