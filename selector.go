package tspgenetic

import "sort"

// Selector decides which chromosomes of an evaluated population survive to
// breed the next generation. Implementations must not reorder or resize the
// population they are given.
type Selector interface {
	Select(pop Population) Population
}

// TruncationSelector ranks a population by ascending tour distance and
// keeps the top half: floor(N/2), with at least one survivor. Ties keep
// their original population order. An earlier roulette-wheel strategy
// weighted by inverse tour length failed to converge and was dropped in
// favor of strict truncation.
type TruncationSelector struct{}

func NewTruncationSelector() *TruncationSelector {
	return &TruncationSelector{}
}

func (s *TruncationSelector) Select(pop Population) Population {
	ranked := make(Population, len(pop))
	copy(ranked, pop)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	keep := len(pop) / 2
	if keep < 1 {
		keep = 1
	}
	return ranked[:keep]
}
