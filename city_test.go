package tspgenetic

import (
	"errors"
	"os"
	"path/filepath"
	test "testing"
)

func TestCityDist(t *test.T) {
	a := &City{Num: 1, X: 0, Y: 0}
	b := &City{Num: 2, X: 3, Y: 4}

	if d := a.Dist(b); d != 5.0 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
	if d := b.Dist(a); d != 5.0 {
		t.Errorf("Dist() is not symmetric: %v", d)
	}
	if d := a.Dist(a); d != 0.0 {
		t.Errorf("Dist() to self = %v, expected 0", d)
	}
}

func TestLoadCities(t *test.T) {
	cities, err := LoadCities("cities.json")
	if err != nil {
		t.Fatalf("LoadCities() failed: %v", err)
	}
	if len(cities) != 9 {
		t.Fatalf("Loaded %d cities, expected 9", len(cities))
	}
	if cities[0].Num != 1 || cities[0].X != 1 || cities[0].Y != 1 {
		t.Errorf("First city = %+v, expected {1 1 1}", cities[0])
	}
	if cities[8].Num != 9 || cities[8].X != 9 || cities[8].Y != 2 {
		t.Errorf("Last city = %+v, expected {9 9 2}", cities[8])
	}
}

func TestLoadCitiesMissingFile(t *test.T) {
	if _, err := LoadCities(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Errorf("LoadCities() succeeded on a missing file")
	}
}

func TestLoadCitiesEmptySet(t *test.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte(`{"cities": []}`), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	_, err := LoadCities(path)
	if !errors.Is(err, ErrNoCities) {
		t.Errorf("LoadCities() = %v, expected ErrNoCities", err)
	}
}
