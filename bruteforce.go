package tspgenetic

import (
	"errors"
	"fmt"
)

// BruteForceMaxCities bounds the exact solver; the search enumerates
// (n-1)! tours.
const BruteForceMaxCities = 12

// ErrTooManyCities reports a city set too large for exact enumeration.
var ErrTooManyCities = errors.New("too many cities for brute force")

// BruteForce enumerates every tour and returns an optimal chromosome with
// its distance already evaluated. It exists as a correctness check for
// small city sets and is not part of the engine. The first city is pinned:
// a closed tour's distance is invariant under rotation, so only the
// remainder is permuted.
func BruteForce(cities []*City) (*Chromosome, error) {
	if len(cities) == 0 {
		return nil, ErrNoCities
	}
	if len(cities) > BruteForceMaxCities {
		return nil, fmt.Errorf("%w: got %d, limit %d",
			ErrTooManyCities, len(cities), BruteForceMaxCities)
	}

	tour := make([]*City, len(cities))
	copy(tour, cities)

	best := NewChromosome(cities)
	best.Distance = TourDistance(best.Tour)
	best.Evaluated = true

	var permute func(k int)
	permute = func(k int) {
		if k == len(tour) {
			if d := TourDistance(tour); d < best.Distance {
				copy(best.Tour, tour)
				best.Distance = d
			}
			return
		}
		for i := k; i < len(tour); i++ {
			tour[k], tour[i] = tour[i], tour[k]
			permute(k + 1)
			tour[k], tour[i] = tour[i], tour[k]
		}
	}
	permute(1)

	return best, nil
}
