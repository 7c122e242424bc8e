package service

import "energy_oracle/internal/models"

type RegisterSensorParams struct {
	SensorID   string
	Owner      models.Identity
	EnergyType models.EnergyType // "solar" | "wind"
}

type SubmitReadingParams struct {
	SensorID     string
	AssetID      string
	EnergyOutput uint64
	Timestamp    uint64
}

// EventFilter supports journal queries by starting id and type.
type EventFilter struct {
	From  uint64           // inclusive; 0 means from the beginning
	Type  models.EventType // "" means all types
	Limit int              // non-positive means the default page size
}
