package service

import (
	"context"
	"time"

	"energy_oracle/internal/models"
	"energy_oracle/internal/repository"
)

// RegisterSensor runs the admin-only registration and persists the sensor,
// the journal entry and the control row atomically.
func (l *Ledger) RegisterSensor(ctx context.Context, caller models.Identity, p RegisterSensorParams) (models.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := time.Now()
	height := l.clock.Height()

	ev, err := l.core.RegisterSensor(caller, p.SensorID, p.Owner, p.EnergyType, height)
	if err == nil {
		err = l.persistLocked(ctx, func(r *repository.Repository) error {
			if err := r.Sensors.Upsert(ctx, l.core.Sensor(p.SensorID)); err != nil {
				return err
			}
			if err := r.Events.Append(ctx, ev); err != nil {
				return err
			}
			return r.State.Save(ctx, l.stateRow())
		})
	}
	l.observe.ObserveOperation("register_sensor", err, time.Since(start).Seconds())
	if err != nil {
		return models.Event{}, err
	}
	l.observe.EventAppended()
	l.log.Infow("sensor registered",
		"sensor_id", p.SensorID,
		"owner", p.Owner,
		"energy_type", p.EnergyType,
		"event_id", ev.EventID,
	)
	return ev, nil
}

// DeactivateSensor flips the sensor inactive; its history and aggregates
// stay in place.
func (l *Ledger) DeactivateSensor(ctx context.Context, caller models.Identity, sensorID string) (models.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := time.Now()
	height := l.clock.Height()

	ev, err := l.core.DeactivateSensor(caller, sensorID, height)
	if err == nil {
		err = l.persistLocked(ctx, func(r *repository.Repository) error {
			if err := r.Sensors.Upsert(ctx, l.core.Sensor(sensorID)); err != nil {
				return err
			}
			if err := r.Events.Append(ctx, ev); err != nil {
				return err
			}
			return r.State.Save(ctx, l.stateRow())
		})
	}
	l.observe.ObserveOperation("deactivate_sensor", err, time.Since(start).Seconds())
	if err != nil {
		return models.Event{}, err
	}
	l.observe.EventAppended()
	l.log.Infow("sensor deactivated", "sensor_id", sensorID, "event_id", ev.EventID)
	return ev, nil
}

// Sensor returns the stored sensor, or the zero value when unknown.
func (l *Ledger) Sensor(sensorID string) models.Sensor {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.core.Sensor(sensorID)
}

// Sensors returns every registered sensor ordered by id.
func (l *Ledger) Sensors() []models.Sensor {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.core.SensorList()
}
