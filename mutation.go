package tspgenetic

import "math/rand"

// Mutation perturbs a chromosome's gene order by swapping the cities at two
// distinct positions. Chance is an integer denominator: each Apply fires
// with probability 1-in-Chance, decided per chromosome, not per gene.
type Mutation struct {
	Chance int
}

func NewMutation(chance int) *Mutation {
	return &Mutation{Chance: chance}
}

// Apply flips the 1-in-Chance coin and, on a hit, swaps two distinct random
// positions and invalidates the cached distance. Reports whether the
// chromosome changed. A swap of two elements of a permutation is still a
// permutation, so the tour stays valid. Tours of fewer than two cities are
// never mutated.
func (m *Mutation) Apply(c *Chromosome, rng *rand.Rand) bool {
	if len(c.Tour) < 2 {
		return false
	}
	if rng.Intn(m.Chance) != 0 {
		return false
	}

	i := rng.Intn(len(c.Tour))
	j := rng.Intn(len(c.Tour) - 1)
	if j >= i {
		j++
	}
	c.Tour[i], c.Tour[j] = c.Tour[j], c.Tour[i]
	c.Invalidate()
	return true
}
