package tspgenetic

import "math/rand"

// Population is the fixed-size collection of chromosomes evaluated in one
// generation. It is owned exclusively by the active generation and replaced
// wholesale by the next one.
type Population []*Chromosome

// NewPopulation seeds size random permutations of cities drawn from rng.
func NewPopulation(cities []*City, size int, rng *rand.Rand) Population {
	pop := make(Population, size)
	for i := range pop {
		pop[i] = NewRandomChromosome(cities, rng)
	}
	return pop
}

// Evaluate scores every chromosome whose cached distance is stale.
func (p Population) Evaluate(e *Evaluator) {
	for _, c := range p {
		if !c.Evaluated {
			e.Evaluate(c)
		}
	}
}

// Best returns the fittest chromosome, lowest distance first. The
// population must already be evaluated.
func (p Population) Best() *Chromosome {
	var best *Chromosome
	for _, c := range p {
		if best == nil || c.Distance < best.Distance {
			best = c
		}
	}
	return best
}

// AverageDistance returns the mean tour distance across the population.
func (p Population) AverageDistance() float64 {
	if len(p) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range p {
		total += c.Distance
	}
	return total / float64(len(p))
}
