package tspgenetic

import (
	"errors"
	"math"
	test "testing"
)

const distEpsilon = 1e-9

func TestTourDistanceSquare(t *test.T) {
	if d := TourDistance(unitSquare()); math.Abs(d-4.0) > distEpsilon {
		t.Errorf("Unit square tour distance = %v, expected 4", d)
	}
}

func TestTourDistanceDegenerate(t *test.T) {
	if d := TourDistance(nil); d != 0 {
		t.Errorf("Empty tour distance = %v, expected 0", d)
	}
	if d := TourDistance(lineCities(1)); d != 0 {
		t.Errorf("Single-city tour distance = %v, expected 0", d)
	}
}

// The closed tour is the same loop under any rotation of the gene order and
// under full reversal, so the distance must not change.
func TestTourDistanceRotationReversalInvariant(t *test.T) {
	cities := assignmentCities()
	c := NewRandomChromosome(cities, NewRNG(7))
	want := TourDistance(c.Tour)

	for shift := 1; shift < len(c.Tour); shift++ {
		rotated := append(append([]*City{}, c.Tour[shift:]...), c.Tour[:shift]...)
		if got := TourDistance(rotated); math.Abs(got-want) > distEpsilon {
			t.Errorf("Rotation by %d changed distance: %v != %v", shift, got, want)
		}
	}

	reversed := make([]*City, len(c.Tour))
	for i, city := range c.Tour {
		reversed[len(c.Tour)-1-i] = city
	}
	if got := TourDistance(reversed); math.Abs(got-want) > distEpsilon {
		t.Errorf("Reversal changed distance: %v != %v", got, want)
	}
}

func TestEvaluateWritesCache(t *test.T) {
	cities := unitSquare()
	ev := NewEvaluator(cities)
	c := NewChromosome(cities)

	if c.Evaluated {
		t.Fatalf("Fresh chromosome claims an evaluated cache")
	}
	if d := ev.Evaluate(c); math.Abs(d-4.0) > distEpsilon {
		t.Errorf("Evaluate() = %v, expected 4", d)
	}
	if !c.Evaluated || c.Distance != 4.0 {
		t.Errorf("Cache not written: %+v", c)
	}

	c.Invalidate()
	if c.Evaluated || c.Distance != 0 {
		t.Errorf("Invalidate() left a live cache: %+v", c)
	}
}

func TestCheckTour(t *test.T) {
	cities := assignmentCities()
	ev := NewEvaluator(cities)

	if err := ev.CheckTour(NewChromosome(cities)); err != nil {
		t.Errorf("Valid tour rejected: %v", err)
	}

	short := NewChromosome(cities[:8])
	if err := ev.CheckTour(short); !errors.Is(err, ErrInvalidTour) {
		t.Errorf("Short tour accepted: %v", err)
	}

	dup := NewChromosome(cities)
	dup.Tour[3] = dup.Tour[0]
	if err := ev.CheckTour(dup); !errors.Is(err, ErrInvalidTour) {
		t.Errorf("Duplicated city accepted: %v", err)
	}
}

// Cities 3 and 7 of the assignment set share coordinates; the permutation
// check must still tell them apart.
func TestCheckTourDuplicateCoordinates(t *test.T) {
	cities := assignmentCities()
	ev := NewEvaluator(cities)

	c := NewChromosome(cities)
	c.Tour[2] = cities[6] // both copies of (4,8) now point at city 7
	c.Tour[6] = cities[6]
	if err := ev.CheckTour(c); !errors.Is(err, ErrInvalidTour) {
		t.Errorf("Tour visiting city 7 twice accepted: %v", err)
	}
}
