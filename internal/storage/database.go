// Package storage holds the hero data access port and its implementations:
// an in-memory reference repository and a SQL repository backed by SQLite
// or MySQL.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql" // registers the "mysql" driver
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver

	"github.com/fleveque/heroes-service/internal/config"
)

// Storage drivers accepted in configuration.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// dialect holds the per-database statements. MySQL refuses multi-statement
// Exec by default, so migrations are a list run one at a time.
type dialect struct {
	driverName string
	migrations []string
	seed       string
}

var dialects = map[string]dialect{
	DriverSQLite: {
		driverName: "sqlite3",
		migrations: []string{
			`CREATE TABLE IF NOT EXISTS heroes (
    seq  INTEGER PRIMARY KEY AUTOINCREMENT,
    id   TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL
)`,
			`CREATE INDEX IF NOT EXISTS idx_heroes_name ON heroes(name)`,
		},
		seed: `INSERT OR IGNORE INTO heroes (id, name) VALUES (?, ?)`,
	},
	DriverMySQL: {
		driverName: "mysql",
		migrations: []string{
			`CREATE TABLE IF NOT EXISTS heroes (
    seq  BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    id   VARCHAR(64) NOT NULL UNIQUE,
    name VARCHAR(255) NOT NULL,
    INDEX idx_heroes_name (name)
)`,
		},
		seed: `INSERT IGNORE INTO heroes (id, name) VALUES (?, ?)`,
	},
}

// NewDatabase opens a SQL connection for driver ("sqlite" or "mysql"),
// verifies it with Ping and runs the migrations.
func NewDatabase(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	if driver == DriverSQLite {
		// WAL for concurrent readers, and wait on locks instead of failing.
		dsn = fmt.Sprintf("%s?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000", dsn)
	}

	db, err := sqlx.Open(d.driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Open is lazy; Ping actually connects.
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := Migrate(ctx, db, driver); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the heroes table and seeds the reference heroes. It is
// idempotent: existing rows are left untouched.
func Migrate(ctx context.Context, db *sqlx.DB, driver string) error {
	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("unsupported sql driver %q", driver)
	}

	for _, stmt := range d.migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	for _, h := range referenceHeroes {
		if _, err := db.ExecContext(ctx, d.seed, h.ID, h.Name); err != nil {
			return fmt.Errorf("seeding hero %s: %w", h.ID, err)
		}
	}
	return nil
}

// Open builds the HeroRepository selected by cfg.Driver. The returned close
// func releases the underlying connection, if any.
func Open(ctx context.Context, cfg config.StorageConfig) (HeroRepository, func() error, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemoryHeroRepository(cfg.SimulatedLatency), func() error { return nil }, nil

	case DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
			return nil, nil, fmt.Errorf("creating database directory: %w", err)
		}
		db, err := NewDatabase(ctx, DriverSQLite, cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		return NewHeroRepository(db), db.Close, nil

	case DriverMySQL:
		db, err := NewDatabase(ctx, DriverMySQL, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return NewHeroRepository(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
