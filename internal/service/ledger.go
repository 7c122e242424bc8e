package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"energy_oracle/internal/feed"
	"energy_oracle/internal/logger"
	"energy_oracle/internal/metrics"
	"energy_oracle/internal/models"
	"energy_oracle/internal/oracle"
	"energy_oracle/internal/repository"
)

// FeedPublisher pushes admitted readings to downstream consumers after the
// operation has committed.
type FeedPublisher interface {
	PublishAdmittedReading(ctx context.Context, r feed.AdmittedReading) error
}

// Ledger owns the in-memory oracle state and serializes every access to it.
// Mutations run the core transition first, then write all of the
// operation's rows in one database transaction; if that write fails the
// memory image is rebuilt from the database so memory never runs ahead of
// disk.
type Ledger struct {
	mu      sync.Mutex
	core    *oracle.State
	repos   *repository.Repository
	clock   HeightSource
	log     *logger.Logger
	observe *metrics.Metrics
	feed    FeedPublisher
}

func NewLedger(repos *repository.Repository, clock HeightSource, log *logger.Logger, observe *metrics.Metrics) *Ledger {
	return &Ledger{
		repos:   repos,
		clock:   clock,
		log:     log,
		observe: observe,
	}
}

// AttachFeed connects an optional downstream publisher. Call before serving
// traffic; delivery failures are logged, never surfaced to submitters.
func (l *Ledger) AttachFeed(p FeedPublisher) { l.feed = p }

// Restore loads the persisted ledger into memory, or bootstraps a fresh one
// owned by deployer when the database is empty.
func (l *Ledger) Restore(ctx context.Context, deployer models.Identity) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.restoreLocked(ctx, deployer)
}

func (l *Ledger) restoreLocked(ctx context.Context, deployer models.Identity) error {
	st, err := l.repos.State.Load(ctx)
	if err != nil {
		return fmt.Errorf("load oracle state: %w", err)
	}

	// A persisted ledger always has an admin; role handover to the null
	// identity is rejected by the core. Empty admin means a virgin database.
	if st.Admin.IsNull() {
		if deployer.IsNull() {
			return errors.New("database is empty and no admin identity is configured")
		}
		l.core = oracle.New(deployer)
		if err := l.repos.State.Save(ctx, l.stateRow()); err != nil {
			return fmt.Errorf("bootstrap oracle state: %w", err)
		}
		l.observe.SetPaused(false)
		l.log.Infow("bootstrapped new ledger", "admin", deployer)
		return nil
	}

	sensors, err := l.repos.Sensors.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load sensors: %w", err)
	}
	readings, err := l.repos.Readings.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load readings: %w", err)
	}
	assetMetrics, err := l.repos.Metrics.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load asset metrics: %w", err)
	}
	events, err := l.repos.Events.List(ctx, 0, "", 0)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}

	l.core = oracle.Load(oracle.Snapshot{
		Admin:       st.Admin,
		Operator:    st.Operator,
		Paused:      st.Paused,
		NextEventID: st.NextEventID,
		Sensors:     sensors,
		Metrics:     assetMetrics,
		Readings:    readings,
		Events:      events,
	})
	l.observe.SetPaused(st.Paused)
	l.log.Infow("restored ledger",
		"admin", st.Admin,
		"operator", st.Operator,
		"paused", st.Paused,
		"sensors", len(sensors),
		"events", len(events),
	)
	return nil
}

// stateRow projects the singleton control row out of the core.
func (l *Ledger) stateRow() models.OracleState {
	return models.OracleState{
		Admin:       l.core.Admin(),
		Operator:    l.core.Operator(),
		Paused:      l.core.Paused(),
		NextEventID: l.core.NextEventID(),
	}
}

// persistLocked commits one operation's rows. On failure the in-memory
// state is thrown away and rebuilt from the database, which still holds the
// pre-operation image.
func (l *Ledger) persistLocked(ctx context.Context, fn func(*repository.Repository) error) error {
	err := l.repos.InTx(ctx, fn)
	if err == nil {
		return nil
	}
	if rerr := l.restoreLocked(ctx, models.NullIdentity); rerr != nil {
		l.log.Errorw("reload after failed write", "error", rerr)
	}
	return fmt.Errorf("persist operation: %w", err)
}

func (l *Ledger) publishAdmitted(ctx context.Context, ev models.Event, p SubmitReadingParams, energyType models.EnergyType) {
	if l.feed == nil {
		return
	}
	msg := feed.AdmittedReading{
		SensorID:     p.SensorID,
		AssetID:      p.AssetID,
		EnergyOutput: p.EnergyOutput,
		Timestamp:    p.Timestamp,
		EventID:      ev.EventID,
		EnergyType:   string(energyType),
	}
	if err := l.feed.PublishAdmittedReading(ctx, msg); err != nil {
		l.log.Warnw("feed publish failed", "sensor_id", p.SensorID, "event_id", ev.EventID, "error", err)
	}
}
