package models

// EnergyType classifies what a sensor measures.
type EnergyType string

const (
	EnergySolar EnergyType = "solar"
	EnergyWind  EnergyType = "wind"
)

// Valid reports whether t is a recognized energy type.
func (t EnergyType) Valid() bool {
	return t == EnergySolar || t == EnergyWind
}

type Sensor struct {
	SensorID   string     `json:"sensor_id"`
	Owner      Identity   `json:"owner"`
	EnergyType EnergyType `json:"energy_type"` // solar | wind
	IsActive   bool       `json:"is_active"`
}
