package repository

import (
	"context"
	"database/sql"
	"fmt"

	"energy_oracle/internal/models"
)

// DBTX is the slice of database/sql shared by *sql.DB and *sql.Tx, so every
// store can run either standalone or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type StateRepo interface {
	Save(ctx context.Context, st models.OracleState) error
	Load(ctx context.Context) (models.OracleState, error)
}

type SensorRepo interface {
	Upsert(ctx context.Context, s models.Sensor) error
	ListAll(ctx context.Context) ([]models.Sensor, error)
}

type ReadingRepo interface {
	Upsert(ctx context.Context, r models.SensorReading) error
	ListAll(ctx context.Context) ([]models.SensorReading, error)
}

type MetricsRepo interface {
	Upsert(ctx context.Context, m models.AssetMetrics) error
	ListAll(ctx context.Context) ([]models.AssetMetrics, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.Event) error
	List(ctx context.Context, fromID uint64, typ models.EventType, limit int) ([]models.Event, error)
}

type Repository struct {
	db *sql.DB

	State    StateRepo
	Sensors  SensorRepo
	Readings ReadingRepo
	Metrics  MetricsRepo
	Events   EventRepo
	Auth     Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:       db,
		State:    NewStateSQLite(db),
		Sensors:  NewSensorSQLite(db),
		Readings: NewReadingSQLite(db),
		Metrics:  NewMetricsSQLite(db),
		Events:   NewEventSQLite(db),
		Auth:     NewUserRepository(db),
	}
}

// InTx runs fn against a transaction-bound view of every store and commits
// when fn returns nil. The ledger writes one operation's rows through this
// so readers never see half an operation on disk.
func (r *Repository) InTx(ctx context.Context, fn func(*Repository) error) error {
	// A Repository assembled from bare stores carries no db handle and
	// therefore no transaction support; run fn against the stores directly.
	if r.db == nil {
		return fn(r)
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	bound := &Repository{
		State:    NewStateSQLite(tx),
		Sensors:  NewSensorSQLite(tx),
		Readings: NewReadingSQLite(tx),
		Metrics:  NewMetricsSQLite(tx),
		Events:   NewEventSQLite(tx),
		Auth:     NewUserRepository(tx),
	}
	if err := fn(bound); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
