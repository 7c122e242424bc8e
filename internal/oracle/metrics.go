package oracle

import (
	"sort"

	"energy_oracle/internal/models"
)

// assetMetricsOrInit returns a copy of the asset's metrics, creating the
// record lazily with the submitting sensor's energy type. The type is fixed
// at first write and never reconciled: a later reading routed from a
// differently-typed sensor still folds into the same total.
func (s *State) assetMetricsOrInit(assetID string, energyType models.EnergyType) models.AssetMetrics {
	if m, ok := s.metrics[assetID]; ok {
		return m
	}
	return models.AssetMetrics{AssetID: assetID, EnergyType: energyType}
}

// AssetMetrics returns the stored record, or the zero sentinel when absent.
func (s *State) AssetMetrics(assetID string) models.AssetMetrics {
	return s.metrics[assetID]
}

// AssetMetricsList returns every tracked asset ordered by identifier.
func (s *State) AssetMetricsList() []models.AssetMetrics {
	out := make([]models.AssetMetrics, 0, len(s.metrics))
	for _, m := range s.metrics {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssetID < out[j].AssetID })
	return out
}
