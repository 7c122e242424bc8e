package repository

import (
	"context"
	"fmt"

	"energy_oracle/internal/models"
)

type SensorSQLite struct {
	db DBTX
}

func NewSensorSQLite(db DBTX) *SensorSQLite { return &SensorSQLite{db: db} }

var _ SensorRepo = (*SensorSQLite)(nil)

const (
	upsertSensorSQL = `
		INSERT INTO sensors (sensor_id, owner, energy_type, is_active)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(sensor_id) DO UPDATE SET
			owner=excluded.owner,
			energy_type=excluded.energy_type,
			is_active=excluded.is_active
	`

	selectAllSensorsSQL = `
		SELECT sensor_id, owner, energy_type, is_active
		FROM sensors ORDER BY sensor_id ASC
	`
)

func (r *SensorSQLite) Upsert(ctx context.Context, s models.Sensor) error {
	_, err := r.db.ExecContext(ctx, upsertSensorSQL,
		s.SensorID,
		string(s.Owner),
		string(s.EnergyType),
		s.IsActive,
	)
	if err != nil {
		return fmt.Errorf("upsert sensor %q: %w", s.SensorID, err)
	}
	return nil
}

func (r *SensorSQLite) ListAll(ctx context.Context) ([]models.Sensor, error) {
	rows, err := r.db.QueryContext(ctx, selectAllSensorsSQL)
	if err != nil {
		return nil, fmt.Errorf("list sensors: %w", err)
	}
	defer rows.Close()

	var out []models.Sensor
	for rows.Next() {
		var (
			s          models.Sensor
			owner      string
			energyType string
		)
		if err := rows.Scan(&s.SensorID, &owner, &energyType, &s.IsActive); err != nil {
			return nil, fmt.Errorf("scan sensor row: %w", err)
		}
		s.Owner = models.Identity(owner)
		s.EnergyType = models.EnergyType(energyType)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sensor rows: %w", err)
	}
	return out, nil
}
