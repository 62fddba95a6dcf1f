package main

import (
	"flag"
	"fmt"

	tsp "github.com/KYDronePilot/TSPGenetic"

	log "github.com/sirupsen/logrus"
)

var citiesPath = flag.String("cities", "./cities.json", "City set to solve exactly, JSON")

// Exact reference answers for small city sets, for judging what the
// genetic engine converges to.
func main() {
	flag.Parse()

	cities, err := tsp.LoadCities(*citiesPath)
	if err != nil {
		log.Fatalf("Unable to load cities: %v", err)
	}

	best, err := tsp.BruteForce(cities)
	if err != nil {
		log.Fatalf("Brute force failed: %v", err)
	}

	fmt.Printf("Optimal tour: %v\n", best)
	fmt.Printf("Distance: %v\n", best.Distance)
}
