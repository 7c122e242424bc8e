package service

import "energy_oracle/internal/models"

// Status returns a consistent snapshot of the control surface plus counts,
// stamped with the current height.
func (l *Ledger) Status() models.OracleStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return models.OracleStatus{
		Admin:        l.core.Admin(),
		Operator:     l.core.Operator(),
		Paused:       l.core.Paused(),
		Height:       l.clock.Height(),
		NextEventID:  l.core.NextEventID(),
		SensorCount:  l.core.SensorCount(),
		AssetCount:   l.core.AssetCount(),
		ReadingCount: l.core.ReadingCount(),
		EventCount:   l.core.EventCount(),
	}
}

// AssetMetrics returns the aggregate for one asset, or the zero value when
// the asset has never received a reading.
func (l *Ledger) AssetMetrics(assetID string) models.AssetMetrics {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.core.AssetMetrics(assetID)
}

// AssetMetricsList returns every tracked asset ordered by id.
func (l *Ledger) AssetMetricsList() []models.AssetMetrics {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.core.AssetMetricsList()
}
