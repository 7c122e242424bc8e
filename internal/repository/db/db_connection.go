package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates the ledger's SQLite file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is not great with many writers
	db.SetMaxIdleConns(1)

	// Pragmas to improve reliability
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA journal_mode=WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA foreign_keys=ON: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaOracleState = `
CREATE TABLE IF NOT EXISTS oracle_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    admin TEXT NOT NULL,
    operator TEXT NOT NULL,
    paused BOOLEAN NOT NULL,
    next_event_id INTEGER NOT NULL
);
`

const schemaSensors = `
CREATE TABLE IF NOT EXISTS sensors (
    sensor_id TEXT PRIMARY KEY,
    owner TEXT NOT NULL,
    energy_type TEXT NOT NULL,
    is_active BOOLEAN NOT NULL
);
`

const schemaSensorReadings = `
CREATE TABLE IF NOT EXISTS sensor_readings (
    sensor_id TEXT NOT NULL,
    timestamp INTEGER NOT NULL,
    energy_output INTEGER NOT NULL,
    verified BOOLEAN NOT NULL,
    reported_by TEXT NOT NULL,
    PRIMARY KEY (sensor_id, timestamp)
);
`

const schemaAssetMetrics = `
CREATE TABLE IF NOT EXISTS asset_metrics (
    asset_id TEXT PRIMARY KEY,
    total_energy_output TEXT NOT NULL,
    last_update_timestamp INTEGER NOT NULL,
    last_energy_output INTEGER NOT NULL,
    energy_type TEXT NOT NULL
);
`

const schemaOracleEvents = `
CREATE TABLE IF NOT EXISTS oracle_events (
    event_id INTEGER PRIMARY KEY,
    type TEXT NOT NULL,
    sensor_id TEXT NOT NULL,
    asset_id TEXT,
    timestamp INTEGER NOT NULL,
    data INTEGER
);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaOracleState,
		schemaSensors,
		schemaSensorReadings,
		schemaAssetMetrics,
		schemaOracleEvents,
		schemaUsers,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
