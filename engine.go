package tspgenetic

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// Configuration errors, surfaced before any generation runs.
var (
	ErrPopulationSize  = errors.New("population size must be positive")
	ErrGenerationCount = errors.New("generation count must not be negative")
	ErrMutationChance  = errors.New("mutation chance denominator must be positive")
	ErrNoCities        = errors.New("city set is empty")
)

// EngineConfig carries the run parameters supplied by the operator.
// MutationChance is the integer denominator of the per-chromosome mutation
// probability: 1-in-MutationChance per generation. Seed 0 means a
// time-based, non-reproducible run.
type EngineConfig struct {
	PopulationSize int   `toml:"population_size"`
	Generations    int   `toml:"generations"`
	MutationChance int   `toml:"mutation_chance"`
	Seed           int64 `toml:"seed"`
}

func (cfg *EngineConfig) Validate() error {
	if cfg.PopulationSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrPopulationSize, cfg.PopulationSize)
	}
	if cfg.Generations < 0 {
		return fmt.Errorf("%w: got %d", ErrGenerationCount, cfg.Generations)
	}
	if cfg.MutationChance <= 0 {
		return fmt.Errorf("%w: got %d", ErrMutationChance, cfg.MutationChance)
	}
	return nil
}

// GenerationRecord summarizes one completed generation: best and average
// closed-tour distance over the population that ended it.
type GenerationRecord struct {
	Generation int
	Best       float64
	Average    float64
}

// Result is what a finished run hands to the reporting and plotting
// collaborators.
type Result struct {
	// Best is the best chromosome seen across all generations. Because the
	// surviving half carries over unmutated each generation, it is also the
	// best of the final population.
	Best *Chromosome

	// History holds one record per completed generation, in order.
	History []GenerationRecord

	// Final is the population the run ended with.
	Final Population
}

// Engine drives the generation loop: seed a population of random
// permutations, then per generation evaluate stale fitness, select the
// surviving half, refill to size with order crossover over randomly paired
// survivors, mutate the offspring, and record best/average distance.
type Engine struct {
	config    *EngineConfig
	cities    []*City
	rng       *rand.Rand
	selector  Selector
	evaluator *Evaluator
	mutation  *Mutation
}

// NewEngine validates cfg and builds an engine over the given city set,
// using the truncation selector. Invalid configuration fails here, before
// any generation runs.
func NewEngine(cities []*City, cfg *EngineConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		return nil, ErrNoCities
	}
	return &Engine{
		config:    cfg,
		cities:    cities,
		rng:       NewRNG(cfg.Seed),
		selector:  NewTruncationSelector(),
		evaluator: NewEvaluator(cities),
		mutation:  NewMutation(cfg.MutationChance),
	}, nil
}

// SetSelector swaps the survivor-selection strategy. The loop's control
// structure does not depend on how survivors are picked.
func (e *Engine) SetSelector(s Selector) {
	e.selector = s
}

// Run executes the configured number of generations and returns the best
// tour found plus the per-generation history. Not finding a good tour is
// not an error. Cancelling ctx stops the run at the next generation
// boundary and returns the result accumulated so far with a nil error; a
// shortened run is still a valid heuristic outcome.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	pop := NewPopulation(e.cities, e.config.PopulationSize, e.rng)
	pop.Evaluate(e.evaluator)

	result := &Result{
		Best:    pop.Best().Clone(),
		History: make([]GenerationRecord, 0, e.config.Generations),
	}

	for gen := 1; gen <= e.config.Generations; gen++ {
		pop = e.step(pop)

		record := GenerationRecord{
			Generation: gen,
			Best:       pop.Best().Distance,
			Average:    pop.AverageDistance(),
		}
		result.History = append(result.History, record)
		if best := pop.Best(); best.Distance < result.Best.Distance {
			result.Best = best.Clone()
		}

		log.WithFields(log.Fields{
			"generation": record.Generation,
			"best":       record.Best,
			"average":    record.Average,
		}).Debug("generation complete")

		if ctx.Err() != nil {
			log.WithField("generation", gen).Info("run stopped early")
			break
		}
	}

	result.Final = pop
	return result, nil
}

// step advances the population one generation: survivors carry over
// untouched, offspring from randomly paired survivors (with replacement,
// self-pairing allowed) refill the population to exactly the configured
// size, and only the offspring face the mutation coin. Offspring are
// re-evaluated before the new population is returned.
func (e *Engine) step(pop Population) Population {
	survivors := e.selector.Select(pop)

	next := make(Population, 0, e.config.PopulationSize)
	next = append(next, survivors...)
	for len(next) < e.config.PopulationSize {
		a := survivors[e.rng.Intn(len(survivors))]
		b := survivors[e.rng.Intn(len(survivors))]
		child := a.Cross(b, e.rng)
		e.mutation.Apply(child, e.rng)
		next = append(next, child)
	}

	next.Evaluate(e.evaluator)
	return next
}
