package apihub

import (
	"math/rand"

	"github.com/mohamadfayez/apigee-marketplace/internal/domain/entity"
)

// The selection functions reproduce the storefront's historical sampling,
// including its skew: the primary pick is floor(random()*(N-1)), which
// can never land on the last element, and the "two distinct" target-user
// picks come from a post-increment expression that yields the adjacent
// pair (start+1, start) rather than two independent draws. Downstream
// dashboards were seeded against this distribution, so it is kept as is.

// pickIndex returns floor(random()*(n-1)); 0 when the list has at most
// one element.
func pickIndex(rng *rand.Rand, n int) int {
	if n <= 1 {
		return 0
	}
	return rng.Intn(n - 1)
}

// pickOne selects a single attribute, or nil from an empty list.
func pickOne(rng *rand.Rand, values []entity.CatalogAttribute) []entity.CatalogAttribute {
	if len(values) == 0 {
		return nil
	}
	return []entity.CatalogAttribute{values[pickIndex(rng, len(values))]}
}

// pickPair selects the target-user pair: the slot order is (start+1,
// start), with the first index wrapping to 0 if it runs past the end.
func pickPair(rng *rand.Rand, values []entity.CatalogAttribute) []entity.CatalogAttribute {
	n := len(values)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []entity.CatalogAttribute{values[0], values[0]}
	}

	start := pickIndex(rng, n)
	first := start + 1
	if first >= n {
		first = 0
	}
	return []entity.CatalogAttribute{values[first], values[start]}
}

// sequentialIndices returns count indices beginning at start, wrapping
// around n. Regions are sampled sequentially, not independently.
func sequentialIndices(start, n, count int) []int {
	if n == 0 || count == 0 {
		return nil
	}

	indices := make([]int, 0, count)
	idx := start % n
	for i := 0; i < count; i++ {
		indices = append(indices, idx)
		idx++
		if idx >= n {
			idx = 0
		}
	}
	return indices
}

// pickSequence selects count attributes starting from a random index
// with wraparound.
func pickSequence(rng *rand.Rand, values []entity.CatalogAttribute, count int) []entity.CatalogAttribute {
	if len(values) == 0 {
		return nil
	}

	start := pickIndex(rng, len(values))
	picked := make([]entity.CatalogAttribute, 0, count)
	for _, idx := range sequentialIndices(start, len(values), count) {
		picked = append(picked, values[idx])
	}
	return picked
}
