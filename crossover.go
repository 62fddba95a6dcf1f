package tspgenetic

import "math/rand"

// Cross combines c (parent A) and other (parent B) into one offspring using
// order crossover. Two cut points drawn from rng bound a half-open pick
// window [start, end) with 0 <= start <= end <= len: window genes come from
// parent A at the same positions, and the remaining slots are filled
// starting just past the window, wrapping around, with parent B's genes in
// B's order, skipping any gene the window already placed. The offspring is
// a permutation of the full city set by construction.
//
// An empty window yields a copy of parent B's order; a window spanning the
// whole tour yields a copy of parent A.
func (c *Chromosome) Cross(other *Chromosome, rng *rand.Rand) *Chromosome {
	start := rng.Intn(len(c.Tour) + 1)
	end := rng.Intn(len(c.Tour) + 1)
	if start > end {
		start, end = end, start
	}
	return c.crossWindow(other, start, end)
}

func (c *Chromosome) crossWindow(other *Chromosome, start, end int) *Chromosome {
	length := len(c.Tour)
	child := &Chromosome{Tour: make([]*City, length)}

	pick := make(map[*City]bool, end-start)
	for i := start; i < end; i++ {
		child.Tour[i] = c.Tour[i]
		pick[c.Tour[i]] = true
	}
	if end-start == length {
		return child
	}

	// Walk parent B from the window's end, wrapping; dst visits exactly the
	// positions outside [start, end).
	src := end % length
	dst := end % length
	for filled := end - start; filled < length; {
		city := other.Tour[src]
		if !pick[city] {
			child.Tour[dst] = city
			pick[city] = true
			dst = (dst + 1) % length
			filled++
		}
		src = (src + 1) % length
	}
	return child
}
