package models

// AssetMetrics is the running production record of one physical asset.
// EnergyType is fixed by the first sensor that reports for the asset and is
// never reconciled against later submissions.
type AssetMetrics struct {
	AssetID             string     `json:"asset_id"`
	TotalEnergyOutput   Uint128    `json:"total_energy_output"`
	LastUpdateTimestamp uint64     `json:"last_update_timestamp"`
	LastEnergyOutput    uint64     `json:"last_energy_output"`
	EnergyType          EnergyType `json:"energy_type"`
}
