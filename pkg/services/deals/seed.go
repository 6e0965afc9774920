package deals

import (
	"math/rand"

	"github.com/zeebo/xxh3"
)

// stableHash maps a string to an integer that is identical across runs and platforms.
func stableHash(s string) int64 {
	return int64(xxh3.HashString(s))
}

// randomSeed combines the date index and the date the same way for every run,
// so a (date, index) pair always yields the same selection and discounts.
func randomSeed(dateIndex int, date string) int64 {
	return int64(dateIndex)*1000 + stableHash(date)
}

func newGenerator(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // synthetic data, not security sensitive
}

// uniform draws from [lo, hi] the way a linear interpolation over Float64 does.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

func shuffleDeals[T any](rng *rand.Rand, items []T) {
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
}
