// Package oracle holds the ledger's state-transition core: sensor lifecycle,
// admission control for readings, per-asset aggregation and the audit
// journal. Every mutating operation validates completely before it writes,
// so a failed call leaves no partial state behind.
//
// A State is not safe for concurrent use. Callers apply operations one at a
// time; the service layer wraps every call in a single mutex. The logical
// height is supplied per call by the environment and is assumed monotonic.
package oracle

import "energy_oracle/internal/models"

// ReadingKey addresses one stored reading.
type ReadingKey struct {
	SensorID  string
	Timestamp uint64
}

// State is the oracle's entire mutable state.
type State struct {
	admin    models.Identity
	operator models.Identity
	paused   bool

	nextEventID uint64

	sensors  map[string]models.Sensor
	metrics  map[string]models.AssetMetrics
	readings map[ReadingKey]models.SensorReading
	events   []models.Event
}

// New returns a pristine ledger. The deployer starts as both admin and
// oracle operator, unpaused, with an empty journal.
func New(deployer models.Identity) *State {
	return &State{
		admin:    deployer,
		operator: deployer,
		sensors:  make(map[string]models.Sensor),
		metrics:  make(map[string]models.AssetMetrics),
		readings: make(map[ReadingKey]models.SensorReading),
	}
}

// Snapshot is the persisted form of the ledger, used to rebuild the
// in-memory state at startup.
type Snapshot struct {
	Admin       models.Identity
	Operator    models.Identity
	Paused      bool
	NextEventID uint64
	Sensors     []models.Sensor
	Metrics     []models.AssetMetrics
	Readings    []models.SensorReading
	Events      []models.Event
}

// Load rebuilds a state from a snapshot. Events must arrive ordered by id,
// dense from 0, the way the journal writes them.
func Load(snap Snapshot) *State {
	s := New(snap.Admin)
	s.operator = snap.Operator
	s.paused = snap.Paused
	s.nextEventID = snap.NextEventID
	for _, sn := range snap.Sensors {
		s.sensors[sn.SensorID] = sn
	}
	for _, m := range snap.Metrics {
		s.metrics[m.AssetID] = m
	}
	for _, r := range snap.Readings {
		s.readings[ReadingKey{SensorID: r.SensorID, Timestamp: r.Timestamp}] = r
	}
	s.events = append(s.events, snap.Events...)
	return s
}

func (s *State) Admin() models.Identity    { return s.admin }
func (s *State) Operator() models.Identity { return s.operator }
func (s *State) Paused() bool              { return s.paused }
func (s *State) NextEventID() uint64       { return s.nextEventID }
func (s *State) SensorCount() int          { return len(s.sensors) }
func (s *State) AssetCount() int           { return len(s.metrics) }
func (s *State) ReadingCount() int         { return len(s.readings) }
