package repository

import (
	"context"
	"fmt"

	"energy_oracle/internal/models"
)

type MetricsSQLite struct {
	db DBTX
}

func NewMetricsSQLite(db DBTX) *MetricsSQLite { return &MetricsSQLite{db: db} }

var _ MetricsRepo = (*MetricsSQLite)(nil)

const (
	upsertMetricsSQL = `
		INSERT INTO asset_metrics (asset_id, total_energy_output, last_update_timestamp, last_energy_output, energy_type)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(asset_id) DO UPDATE SET
			total_energy_output=excluded.total_energy_output,
			last_update_timestamp=excluded.last_update_timestamp,
			last_energy_output=excluded.last_energy_output,
			energy_type=excluded.energy_type
	`

	selectAllMetricsSQL = `
		SELECT asset_id, total_energy_output, last_update_timestamp, last_energy_output, energy_type
		FROM asset_metrics ORDER BY asset_id ASC
	`
)

// Upsert stores the running record for one asset. The 128-bit total goes
// in as its decimal string.
func (r *MetricsSQLite) Upsert(ctx context.Context, m models.AssetMetrics) error {
	_, err := r.db.ExecContext(ctx, upsertMetricsSQL,
		m.AssetID,
		m.TotalEnergyOutput.String(),
		int64(m.LastUpdateTimestamp),
		int64(m.LastEnergyOutput),
		string(m.EnergyType),
	)
	if err != nil {
		return fmt.Errorf("upsert metrics for asset %q: %w", m.AssetID, err)
	}
	return nil
}

func (r *MetricsSQLite) ListAll(ctx context.Context) ([]models.AssetMetrics, error) {
	rows, err := r.db.QueryContext(ctx, selectAllMetricsSQL)
	if err != nil {
		return nil, fmt.Errorf("list asset metrics: %w", err)
	}
	defer rows.Close()

	var out []models.AssetMetrics
	for rows.Next() {
		var (
			m          models.AssetMetrics
			total      string
			lastTS     int64
			lastOutput int64
			energyType string
		)
		if err := rows.Scan(&m.AssetID, &total, &lastTS, &lastOutput, &energyType); err != nil {
			return nil, fmt.Errorf("scan metrics row: %w", err)
		}
		parsed, err := models.ParseUint128(total)
		if err != nil {
			return nil, fmt.Errorf("metrics row for asset %q: %w", m.AssetID, err)
		}
		m.TotalEnergyOutput = parsed
		m.LastUpdateTimestamp = uint64(lastTS)
		m.LastEnergyOutput = uint64(lastOutput)
		m.EnergyType = models.EnergyType(energyType)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate metrics rows: %w", err)
	}
	return out, nil
}
