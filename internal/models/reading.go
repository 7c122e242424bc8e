package models

// SensorReading is keyed by (sensor id, timestamp). Submitting again under
// the same key overwrites the stored record, last write wins.
type SensorReading struct {
	SensorID     string   `json:"sensor_id"`
	Timestamp    uint64   `json:"timestamp"`
	EnergyOutput uint64   `json:"energy_output"`
	Verified     bool     `json:"verified"`
	ReportedBy   Identity `json:"reported_by"`
}
