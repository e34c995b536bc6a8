package session

import (
	"math/rand/v2"

	"github.com/abhisek/leetsprint/internal/catalog"
)

// Sample draws a stratified random sample from cat. Each difficulty bucket
// is sampled independently without replacement using a partial
// Fisher-Yates shuffle. A bucket smaller than its requested size
// contributes all of its problems. The result is ordered Easy, Medium, Hard.
func Sample(cat *catalog.Catalog, sizes map[catalog.Difficulty]int, rng *rand.Rand) []catalog.Problem {
	var out []catalog.Problem
	for _, d := range catalog.Difficulties {
		out = append(out, sampleBucket(cat.Bucket(d), sizes[d], rng)...)
	}
	return out
}

// sampleBucket shuffles the first k positions of bucket in place and
// returns them. bucket must be a private copy.
func sampleBucket(bucket []catalog.Problem, k int, rng *rand.Rand) []catalog.Problem {
	n := len(bucket)
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		bucket[i], bucket[j] = bucket[j], bucket[i]
	}
	return bucket[:k]
}
