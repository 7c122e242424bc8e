package models

type EventType string

const (
	EventSensorRegistered  EventType = "sensor-registered"
	EventSensorDeactivated EventType = "sensor-deactivated"
	EventDataSubmitted     EventType = "data-submitted"
)

// Event is a single audit log entry. Timestamp is the logical height at
// write time, not the timestamp of any reading the event describes.
type Event struct {
	EventID   uint64    `json:"event_id"`
	Type      EventType `json:"type"` // sensor-registered | sensor-deactivated | data-submitted
	SensorID  string    `json:"sensor_id"`
	AssetID   string    `json:"asset_id,omitempty"`
	Timestamp uint64    `json:"timestamp"`
	Data      *uint64   `json:"data,omitempty"`
}
