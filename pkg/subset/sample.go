package subset

import (
	"math/rand"
)

// SampleKeys draws n keys from the population uniformly, without
// replacement. The population is materialized in canonical sorted order
// before the seeded shuffle, so identical (keys, n, seed) inputs always
// yield an identical result regardless of map iteration order.
func SampleKeys(keys KeySet, n int, seed int64) (KeySet, error) {
	if n > len(keys) {
		return nil, InsufficientPopulationError(n, len(keys))
	}

	pop := keys.Sorted()
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(pop), func(i, j int) {
		pop[i], pop[j] = pop[j], pop[i]
	})

	return NewKeySet(pop[:n]...), nil
}
