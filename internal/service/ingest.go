package service

import (
	"context"
	"time"

	"energy_oracle/internal/models"
	"energy_oracle/internal/repository"
)

// SubmitReading pushes one reading through admission control. On success
// the reading, the asset aggregate, the journal entry and the control row
// commit in one transaction, and the admitted reading goes to the feed
// after the lock is released.
func (l *Ledger) SubmitReading(ctx context.Context, caller models.Identity, p SubmitReadingParams) (models.Event, error) {
	ev, energyType, err := l.admitReading(ctx, caller, p)
	if err != nil {
		return models.Event{}, err
	}
	l.publishAdmitted(ctx, ev, p, energyType)
	return ev, nil
}

func (l *Ledger) admitReading(ctx context.Context, caller models.Identity, p SubmitReadingParams) (models.Event, models.EnergyType, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := time.Now()
	height := l.clock.Height()

	ev, err := l.core.SubmitSensorData(caller, p.SensorID, p.AssetID, p.EnergyOutput, p.Timestamp, height)
	if err == nil {
		err = l.persistLocked(ctx, func(r *repository.Repository) error {
			if err := r.Readings.Upsert(ctx, l.core.Reading(p.SensorID, p.Timestamp)); err != nil {
				return err
			}
			if err := r.Metrics.Upsert(ctx, l.core.AssetMetrics(p.AssetID)); err != nil {
				return err
			}
			if err := r.Events.Append(ctx, ev); err != nil {
				return err
			}
			return r.State.Save(ctx, l.stateRow())
		})
	}
	l.observe.ObserveOperation("submit_reading", err, time.Since(start).Seconds())
	if err != nil {
		return models.Event{}, "", err
	}
	l.observe.EventAppended()
	l.observe.AddEnergyAdmitted(p.EnergyOutput)
	energyType := l.core.AssetMetrics(p.AssetID).EnergyType
	l.log.Debugw("reading admitted",
		"sensor_id", p.SensorID,
		"asset_id", p.AssetID,
		"energy_output", p.EnergyOutput,
		"timestamp", p.Timestamp,
		"event_id", ev.EventID,
	)
	return ev, energyType, nil
}

// Reading returns the stored reading for (sensorID, timestamp), or the zero
// value when absent.
func (l *Ledger) Reading(sensorID string, timestamp uint64) models.SensorReading {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.core.Reading(sensorID, timestamp)
}
