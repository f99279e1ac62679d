// Package store provides a SQLite-backed library of named scenario presets.
// Presets are parameter sets, not results; simulation output is never
// persisted.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/theirongolddev/mburn/internal/model"
)

// ErrNotFound reports a scenario name with no saved preset.
var ErrNotFound = errors.New("scenario not found")

// Store provides scenario preset persistence.
type Store struct {
	db *sql.DB
}

// Scenario is a named parameter preset with bookkeeping timestamps.
type Scenario struct {
	Name      string
	Params    model.Params
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open opens or creates the scenario database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating scenario dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening scenario db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or updates a preset under the given name. The creation time
// of an existing preset is preserved.
func (s *Store) Save(name string, p model.Params) error {
	if name == "" {
		return errors.New("scenario name must not be empty")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO scenarios
		(name, trials, correlation, food_min, food_mode, food_max,
		 transport_lo, transport_width, lifestyle_mu, lifestyle_sigma,
		 shock_prob, shock_cost, housing_mean, housing_stddev, budget,
		 created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
		 trials=excluded.trials, correlation=excluded.correlation,
		 food_min=excluded.food_min, food_mode=excluded.food_mode,
		 food_max=excluded.food_max, transport_lo=excluded.transport_lo,
		 transport_width=excluded.transport_width,
		 lifestyle_mu=excluded.lifestyle_mu,
		 lifestyle_sigma=excluded.lifestyle_sigma,
		 shock_prob=excluded.shock_prob, shock_cost=excluded.shock_cost,
		 housing_mean=excluded.housing_mean,
		 housing_stddev=excluded.housing_stddev, budget=excluded.budget,
		 updated_at=excluded.updated_at`,
		name, p.Trials, p.Correlation, p.FoodMin, p.FoodMode, p.FoodMax,
		p.TransportLo, p.TransportWidth, p.LifestyleMu, p.LifestyleSigma,
		p.ShockProb, p.ShockCost, p.HousingMean, p.HousingStddev, p.Budget,
		now, now,
	)
	return err
}

// Get returns the preset saved under name, or ErrNotFound.
func (s *Store) Get(name string) (Scenario, error) {
	row := s.db.QueryRow(`SELECT name, trials, correlation, food_min,
		food_mode, food_max, transport_lo, transport_width, lifestyle_mu,
		lifestyle_sigma, shock_prob, shock_cost, housing_mean,
		housing_stddev, budget, created_at, updated_at
		FROM scenarios WHERE name = ?`, name)

	sc, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Scenario{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return sc, err
}

// List returns all presets ordered by most recently updated.
func (s *Store) List() ([]Scenario, error) {
	rows, err := s.db.Query(`SELECT name, trials, correlation, food_min,
		food_mode, food_max, transport_lo, transport_width, lifestyle_mu,
		lifestyle_sigma, shock_prob, shock_cost, housing_mean,
		housing_stddev, budget, created_at, updated_at
		FROM scenarios ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Scenario
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// Delete removes a preset, reporting ErrNotFound if it does not exist.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec("DELETE FROM scenarios WHERE name = ?", name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(r rowScanner) (Scenario, error) {
	var sc Scenario
	var created, updated string
	err := r.Scan(&sc.Name, &sc.Params.Trials, &sc.Params.Correlation,
		&sc.Params.FoodMin, &sc.Params.FoodMode, &sc.Params.FoodMax,
		&sc.Params.TransportLo, &sc.Params.TransportWidth,
		&sc.Params.LifestyleMu, &sc.Params.LifestyleSigma,
		&sc.Params.ShockProb, &sc.Params.ShockCost,
		&sc.Params.HousingMean, &sc.Params.HousingStddev,
		&sc.Params.Budget, &created, &updated)
	if err != nil {
		return Scenario{}, err
	}
	sc.CreatedAt, _ = time.Parse(time.RFC3339, created)
	sc.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return sc, nil
}
