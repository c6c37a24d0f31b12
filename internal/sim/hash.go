package sim

import (
	"math"
	"math/rand/v2"
)

// NewRand returns the deterministic generator a world draws from.
// Equal seeds give equal games.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15)) //#nosec G115 G404 -- deterministic gameplay RNG
}

// HashInts folds values into h for snapshot determinism checks.
func HashInts(h uint64, vs ...int) uint64 {
	for _, v := range vs {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

// HashFloats folds the bit patterns of vs into h.
func HashFloats(h uint64, vs ...float64) uint64 {
	for _, v := range vs {
		h = h*31 + math.Float64bits(v)
	}
	return h
}

// HashBool folds a flag into h.
func HashBool(h uint64, b bool) uint64 {
	if b {
		return h*31 + 1
	}
	return h * 31
}
