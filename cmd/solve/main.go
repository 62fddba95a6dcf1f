package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	tsp "github.com/KYDronePilot/TSPGenetic"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

var (
	toolConfigPath = flag.String("config", "", "Optional TOML tool config (cities path, log level, run archive)")
	citiesPath     = flag.String("cities", "", "City set to solve, JSON. Defaults to './cities.json'")
	popSize        = flag.Int("p", 0, "Population size")
	generations    = flag.Int("g", 0, "Number of generations")
	mutationChance = flag.Int("m", 0, "Mutation probability denominator (1-in-m per chromosome)")
	seed           = flag.Int64("seed", 0, "Random seed (0 = time-based)")
	showTable      = flag.Bool("table", false, "Print a table of the final population")
	showPlot       = flag.Bool("plot", false, "Write tour.png and curve.png for the run")
)

func main() {
	flag.Parse()

	var toolConfig tsp.ToolConfig
	if *toolConfigPath != "" {
		if _, err := toml.DecodeFile(*toolConfigPath, &toolConfig); err != nil {
			log.Fatalf("Failed to unmarshal tool config: %v", err)
		}
	}
	if toolConfig.LogLevel != "" {
		level, err := log.ParseLevel(toolConfig.LogLevel)
		if err != nil {
			log.Fatalf("Bad log_level %q in tool config: %v", toolConfig.LogLevel, err)
		}
		log.SetLevel(level)
	}

	path := *citiesPath
	if path == "" {
		path = toolConfig.Cities
	}
	if path == "" {
		path = "./cities.json"
	}
	cities, err := tsp.LoadCities(path)
	if err != nil {
		log.Fatalf("Unable to load cities: %v", err)
	}

	cfg := &tsp.EngineConfig{
		PopulationSize: *popSize,
		Generations:    *generations,
		MutationChance: *mutationChance,
		Seed:           *seed,
	}
	engine, err := tsp.NewEngine(cities, cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Interrupt stops the run at the next generation boundary and reports
	// whatever was found by then.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.WithFields(log.Fields{
		"cities":          len(cities),
		"population_size": cfg.PopulationSize,
		"generations":     cfg.Generations,
		"mutation_chance": cfg.MutationChance,
	}).Info("evolving")

	result, err := engine.Run(ctx)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	if *showTable {
		tsp.WriteTable(os.Stdout, result.Final)
	}
	if *showPlot {
		if err := tsp.PlotTour(result.Best, "tour.png"); err != nil {
			log.Fatalf("Failed to plot tour: %v", err)
		}
		if err := tsp.PlotLearningCurve(result.History, "curve.png"); err != nil {
			log.Fatalf("Failed to plot learning curve: %v", err)
		}
	}

	if toolConfig.Persistence != nil {
		persist, err := tsp.NewPersistence(toolConfig.Persistence)
		if err != nil {
			log.Fatalf("Failed to create or initialize Persistence: %v", err)
		}
		defer persist.Shutdown()
		if id, err := persist.SaveRun(tsp.NewRun(cfg, len(cities), result)); err != nil {
			log.Fatalf("Failed to archive run: %v", err)
		} else {
			log.WithField("run_id", id).Info("run archived")
		}
	}

	fmt.Printf("Best tour: %v\n", result.Best)
	fmt.Printf("Distance: %.2f\n", result.Best.Distance)
}
