package tspgenetic

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	gorm "gorm.io/gorm"
)

// Run is the archived outcome of one finished run: the parameters it was
// started with, the best tour it found, and the per-generation records.
// Archiving is a reporting concern of the cmd layer; the engine never reads
// any of this back.
type Run struct {
	ID             uint
	PopulationSize int
	Generations    int
	MutationChance int
	Seed           int64
	CityCount      int
	BestDistance   float64
	BestTour       string
	CreatedAt      time.Time
	Records        []GenerationRow `gorm:"foreignKey:RunID"`
}

// GenerationRow is one GenerationRecord flattened for storage.
type GenerationRow struct {
	ID         uint
	RunID      uint
	Generation int
	Best       float64
	Average    float64
}

// NewRun flattens a finished result into archive rows.
func NewRun(cfg *EngineConfig, cityCount int, result *Result) *Run {
	run := &Run{
		PopulationSize: cfg.PopulationSize,
		Generations:    cfg.Generations,
		MutationChance: cfg.MutationChance,
		Seed:           cfg.Seed,
		CityCount:      cityCount,
		BestDistance:   result.Best.Distance,
		BestTour:       result.Best.String(),
		Records:        make([]GenerationRow, len(result.History)),
	}
	for i, rec := range result.History {
		run.Records[i] = GenerationRow{
			Generation: rec.Generation,
			Best:       rec.Best,
			Average:    rec.Average,
		}
	}
	return run
}

type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
}

type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}
	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	var params []string
	for _, prag := range config.SQLitePragmas {
		params = append(params, fmt.Sprintf("_pragma=%s", prag))
	}
	params = append(params, config.SQLiteOptions...)

	var path strings.Builder
	path.WriteString(filepath.Join(config.Path, config.Name))
	if len(params) > 0 {
		path.WriteRune('?')
		path.WriteString(strings.Join(params, "&"))
	}

	db, err := gorm.Open(sqlite.Open(path.String()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	db = db.Session(&gorm.Session{PrepareStmt: true, CreateBatchSize: 1000})

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Persistence) initialize() error {
	return p.DB.AutoMigrate(
		&Run{},
		&GenerationRow{},
	)
}

func (p *Persistence) Shutdown() {
	if sqldb, err := p.DB.DB(); err != nil {
		log.Fatalf("Failed to retrieve raw DB: %v", err)
	} else {
		sqldb.Close()
	}
}

// SaveRun archives a run with its generation records and returns the
// assigned id.
func (p *Persistence) SaveRun(run *Run) (uint, error) {
	if run == nil {
		return 0, fmt.Errorf("Run cannot be nil")
	}
	if result := p.DB.Create(run); result.Error != nil {
		return 0, fmt.Errorf("Failed to call gorm.Create(): %w", result.Error)
	}
	return run.ID, nil
}

// LoadRun fetches an archived run with its records.
func (p *Persistence) LoadRun(id uint) (*Run, error) {
	run := &Run{}
	if result := p.DB.Preload("Records").First(run, id); result.Error != nil {
		return nil, fmt.Errorf("Failed to load run %d: %w", id, result.Error)
	}
	return run, nil
}
