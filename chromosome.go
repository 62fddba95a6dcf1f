package tspgenetic

import (
	"math/rand"
	"strings"

	cp "github.com/jinzhu/copier"
)

// Chromosome is one candidate solution: an ordered permutation of every
// city, plus the cached distance of the closed tour it describes. The cache
// is only meaningful while Evaluated is true; any reordering of the tour
// must go through Invalidate.
type Chromosome struct {
	Tour      []*City
	Distance  float64
	Evaluated bool
}

// NewChromosome builds a chromosome visiting cities in the given order.
func NewChromosome(cities []*City) *Chromosome {
	tour := make([]*City, len(cities))
	copy(tour, cities)
	return &Chromosome{Tour: tour}
}

// NewRandomChromosome builds a chromosome over a random permutation of
// cities drawn from rng.
func NewRandomChromosome(cities []*City, rng *rand.Rand) *Chromosome {
	c := NewChromosome(cities)
	c.Shuffle(rng)
	return c
}

func (c *Chromosome) Len() int {
	return len(c.Tour)
}

// Shuffle reorders the tour in place and invalidates the cached distance.
func (c *Chromosome) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(c.Tour), func(i, j int) {
		c.Tour[i], c.Tour[j] = c.Tour[j], c.Tour[i]
	})
	c.Invalidate()
}

// Invalidate marks the cached distance stale.
func (c *Chromosome) Invalidate() {
	c.Distance = 0
	c.Evaluated = false
}

// Clone copies the chromosome. Cities are owned by the problem definition;
// the clone gets its own tour slice but shares the city pointers.
func (c *Chromosome) Clone() *Chromosome {
	clone := &Chromosome{}
	cp.Copy(clone, c)
	clone.Tour = make([]*City, len(c.Tour))
	copy(clone.Tour, c.Tour)
	return clone
}

func (c *Chromosome) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, city := range c.Tour {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(city.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
