package verify

import "math/rand"

// ProbeSeeds derives the per-probe seed sequence from a base seed. The
// sequence for a given (seed, n) is stable for the life of this
// implementation; probe ordering depends on it.
func ProbeSeeds(seed int64, n int) []int64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int64, n)
	for i := range out {
		out[i] = rng.Int63()
	}
	return out
}
