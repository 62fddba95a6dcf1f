package tspgenetic

import (
	"errors"
	"fmt"
)

// ErrInvalidTour reports a chromosome whose tour is not a permutation of
// the full city set. It signals a defect in crossover or mutation, not a
// recoverable condition.
var ErrInvalidTour = errors.New("tour is not a permutation of the city set")

// Evaluator scores chromosomes by the total Euclidean distance of the
// closed tour, including the hop from the last city back to the first.
// Lower is better. Evaluation is deterministic for a fixed gene order and
// has no side effect beyond writing the chromosome's cache.
type Evaluator struct {
	Cities []*City
}

func NewEvaluator(cities []*City) *Evaluator {
	return &Evaluator{Cities: cities}
}

// Evaluate computes the chromosome's closed-tour distance and writes it to
// the cache.
func (e *Evaluator) Evaluate(c *Chromosome) float64 {
	if DEBUG {
		if err := e.CheckTour(c); err != nil {
			panic(fmt.Errorf("evaluating malformed chromosome %v: %w", c, err))
		}
	}
	c.Distance = TourDistance(c.Tour)
	c.Evaluated = true
	return c.Distance
}

// TourDistance sums the Euclidean distances between consecutive cities plus
// the closing edge back to the start. Tours of fewer than two cities have
// distance 0.
func TourDistance(tour []*City) float64 {
	if len(tour) < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < len(tour)-1; i++ {
		total += tour[i].Dist(tour[i+1])
	}
	return total + tour[len(tour)-1].Dist(tour[0])
}

// CheckTour verifies the permutation invariant: the chromosome visits every
// city of the reference set exactly once.
func (e *Evaluator) CheckTour(c *Chromosome) error {
	if len(c.Tour) != len(e.Cities) {
		return fmt.Errorf("%w: tour has %d cities, expected %d",
			ErrInvalidTour, len(c.Tour), len(e.Cities))
	}
	seen := make(map[*City]bool, len(c.Tour))
	for _, city := range c.Tour {
		if seen[city] {
			return fmt.Errorf("%w: city %v appears twice", ErrInvalidTour, city)
		}
		seen[city] = true
	}
	for _, city := range e.Cities {
		if !seen[city] {
			return fmt.Errorf("%w: city %v missing", ErrInvalidTour, city)
		}
	}
	return nil
}
