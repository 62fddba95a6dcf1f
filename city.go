package tspgenetic

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
)

// City is one stop on a tour, located by 2-D coordinates. Cities are built
// once from input data and shared read-only by every chromosome that
// references them, so equality of *City pointers is city identity.
type City struct {
	Num int
	X   float64
	Y   float64
}

// Dist returns the straight-line Euclidean distance to other.
func (c *City) Dist(other *City) float64 {
	return math.Hypot(c.X-other.X, c.Y-other.Y)
}

func (c *City) String() string {
	return strconv.Itoa(c.Num)
}

// cityFile matches the cities.json layout consumed by the cmd tools.
type cityFile struct {
	Cities []struct {
		X     float64 `json:"x_coord"`
		Y     float64 `json:"y_coord"`
		Label int     `json:"label"`
	} `json:"cities"`
}

// LoadCities reads a city set from a JSON file.
func LoadCities(path string) ([]*City, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read city file: %w", err)
	}

	var file cityFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse city file %s: %w", path, err)
	}
	if len(file.Cities) == 0 {
		return nil, ErrNoCities
	}

	cities := make([]*City, len(file.Cities))
	for i, entry := range file.Cities {
		cities[i] = &City{Num: entry.Label, X: entry.X, Y: entry.Y}
	}
	return cities, nil
}
