package repository

import (
	"context"
	"fmt"

	"energy_oracle/internal/models"
)

type ReadingSQLite struct {
	db DBTX
}

func NewReadingSQLite(db DBTX) *ReadingSQLite { return &ReadingSQLite{db: db} }

var _ ReadingRepo = (*ReadingSQLite)(nil)

const (
	upsertReadingSQL = `
		INSERT INTO sensor_readings (sensor_id, timestamp, energy_output, verified, reported_by)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(sensor_id, timestamp) DO UPDATE SET
			energy_output=excluded.energy_output,
			verified=excluded.verified,
			reported_by=excluded.reported_by
	`

	selectAllReadingsSQL = `
		SELECT sensor_id, timestamp, energy_output, verified, reported_by
		FROM sensor_readings ORDER BY sensor_id ASC, timestamp ASC
	`
)

// Upsert stores a reading under its (sensor_id, timestamp) key; last write
// wins, matching the in-memory ledger.
func (r *ReadingSQLite) Upsert(ctx context.Context, reading models.SensorReading) error {
	_, err := r.db.ExecContext(ctx, upsertReadingSQL,
		reading.SensorID,
		int64(reading.Timestamp),
		int64(reading.EnergyOutput),
		reading.Verified,
		string(reading.ReportedBy),
	)
	if err != nil {
		return fmt.Errorf("upsert reading %q@%d: %w", reading.SensorID, reading.Timestamp, err)
	}
	return nil
}

func (r *ReadingSQLite) ListAll(ctx context.Context) ([]models.SensorReading, error) {
	rows, err := r.db.QueryContext(ctx, selectAllReadingsSQL)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	defer rows.Close()

	var out []models.SensorReading
	for rows.Next() {
		var (
			reading      models.SensorReading
			timestamp    int64
			energyOutput int64
			reportedBy   string
		)
		if err := rows.Scan(&reading.SensorID, &timestamp, &energyOutput, &reading.Verified, &reportedBy); err != nil {
			return nil, fmt.Errorf("scan reading row: %w", err)
		}
		reading.Timestamp = uint64(timestamp)
		reading.EnergyOutput = uint64(energyOutput)
		reading.ReportedBy = models.Identity(reportedBy)
		out = append(out, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reading rows: %w", err)
	}
	return out, nil
}
