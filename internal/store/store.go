// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the built catalog in SQLite for querying and
// export.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/davisw/starforge/internal/catalog"
	"github.com/davisw/starforge/internal/spectral"
	"github.com/davisw/starforge/pkg/types"
)

const (
	buildDir = "build"
	indexDir = "index"
	dbFile   = "starforge.db"

	// StarsFile and CompanionsFile are the build stage's output names.
	StarsFile      = "stars.csv"
	CompanionsFile = "companion_mapping.csv"
)

// Store manages the catalog SQLite database.
type Store struct {
	db         *sql.DB
	dataDir    string
	maxResults int
}

// NewStore opens or creates the catalog database at
// dataDir/index/starforge.db, creating the schema if needed.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dbDir, dbFile)+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, dataDir: cfg.DataDir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS stars (
			name TEXT PRIMARY KEY,
			x REAL NOT NULL,
			y REAL NOT NULL,
			z REAL NOT NULL,
			distance REAL NOT NULL,
			stellar_class TEXT,
			class_letter TEXT,
			mass REAL,
			temperature INTEGER,
			luminosity REAL,
			absolute_magnitude REAL,
			generated INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stars_distance ON stars(distance)`,
		`CREATE INDEX IF NOT EXISTS idx_stars_class_letter ON stars(class_letter)`,
		`CREATE TABLE IF NOT EXISTS companions (
			companion TEXT PRIMARY KEY REFERENCES stars(name),
			primary_star TEXT NOT NULL REFERENCES stars(name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_companions_primary ON companions(primary_star)`,
		`CREATE TABLE IF NOT EXISTS import_status (
			file TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from a catalog indexing run.
type IngestSummary struct {
	Stars      int
	Companions int
	Skipped    bool
}

// Ingest loads dataDir/build/stars.csv and companion_mapping.csv into
// the database. An unchanged catalog file (by mod time) is skipped so
// repeated runs are cheap; a changed one replaces all rows in one
// transaction.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	starsPath := filepath.Join(s.dataDir, buildDir, StarsFile)
	info, err := os.Stat(starsPath)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("locating built catalog: %w", err)
	}
	modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

	var storedModTime string
	err = s.db.QueryRowContext(ctx,
		`SELECT file_mod_time FROM import_status WHERE file = ?`, StarsFile,
	).Scan(&storedModTime)
	if err == nil && storedModTime == modTime {
		fmt.Fprintf(w, "skipped: %s unchanged\n", StarsFile)
		return IngestSummary{Skipped: true}, nil
	}

	stars, mapping, err := s.readBuild(starsPath)
	if err != nil {
		return IngestSummary{}, err
	}

	if err := s.replaceAll(ctx, stars, mapping, modTime); err != nil {
		return IngestSummary{}, err
	}

	fmt.Fprintf(w, "indexed: %d stars, %d companion mappings\n", len(stars), len(mapping))
	return IngestSummary{Stars: len(stars), Companions: len(mapping)}, nil
}

func (s *Store) readBuild(starsPath string) ([]types.StarRecord, types.CompanionMapping, error) {
	sf, err := os.Open(starsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", starsPath, err)
	}
	defer sf.Close()

	stars, err := catalog.ReadStars(sf)
	if err != nil {
		return nil, nil, err
	}

	// The mapping file is optional: a catalog with no multi-star
	// systems legitimately has none.
	mapping := make(types.CompanionMapping)
	mapPath := filepath.Join(s.dataDir, buildDir, CompanionsFile)
	if mf, err := os.Open(mapPath); err == nil {
		defer mf.Close()
		if mapping, err = catalog.ReadCompanions(mf); err != nil {
			return nil, nil, err
		}
	}

	return stars, mapping, nil
}

func (s *Store) replaceAll(ctx context.Context, stars []types.StarRecord, mapping types.CompanionMapping, modTime string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM companions`, `DELETE FROM stars`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing old rows: %w", err)
		}
	}

	starStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO stars (name, x, y, z, distance, stellar_class, class_letter,
			mass, temperature, luminosity, absolute_magnitude, generated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing star insert: %w", err)
	}
	defer starStmt.Close()

	for _, star := range stars {
		// The stars.csv schema carries no generated column; procedural
		// stars are recognizable by their Star-NNNN names.
		generated := 0
		if star.Generated || strings.HasPrefix(star.Name, "Star-") {
			generated = 1
		}
		_, err := starStmt.ExecContext(ctx,
			star.Name, star.X, star.Y, star.Z, star.DistanceFromOrigin(),
			star.SpectralClass, string(spectral.Letter(star.SpectralClass)),
			star.Mass, star.Temperature, star.Luminosity, star.AbsoluteMagnitude,
			generated,
		)
		if err != nil {
			return fmt.Errorf("inserting star %s: %w", star.Name, err)
		}
	}

	compStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO companions (companion, primary_star) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing companion insert: %w", err)
	}
	defer compStmt.Close()

	for companion, primary := range mapping {
		if _, err := compStmt.ExecContext(ctx, companion, primary); err != nil {
			return fmt.Errorf("inserting companion %s: %w", companion, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO import_status (file, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(file) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		StarsFile, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating import status: %w", err)
	}

	return tx.Commit()
}
