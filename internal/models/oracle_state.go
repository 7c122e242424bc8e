package models

// OracleState is the singleton control row: role holders, the pause flag
// and the journal cursor.
type OracleState struct {
	Admin       Identity `json:"admin"`
	Operator    Identity `json:"operator"`
	Paused      bool     `json:"paused"`
	NextEventID uint64   `json:"next_event_id"`
}

// OracleStatus is the read model served by the status endpoint.
type OracleStatus struct {
	Admin        Identity `json:"admin"`
	Operator     Identity `json:"operator"`
	Paused       bool     `json:"paused"`
	Height       uint64   `json:"height"`
	NextEventID  uint64   `json:"next_event_id"`
	SensorCount  int      `json:"sensor_count"`
	AssetCount   int      `json:"asset_count"`
	ReadingCount int      `json:"reading_count"`
	EventCount   int      `json:"event_count"`
}
