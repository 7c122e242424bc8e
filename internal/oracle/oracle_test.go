package oracle

import (
	"testing"

	"energy_oracle/internal/models"
)

const (
	deployer = models.Identity("deployer")
	intruder = models.Identity("intruder")
)

func mustRegister(t *testing.T, s *State, sensorID string, energyType models.EnergyType, height uint64) models.Event {
	t.Helper()
	ev, err := s.RegisterSensor(deployer, sensorID, models.Identity("owner-"+sensorID), energyType, height)
	if err != nil {
		t.Fatalf("register %q: unexpected error: %v", sensorID, err)
	}
	return ev
}

func mustSubmit(t *testing.T, s *State, sensorID, assetID string, output, timestamp, height uint64) models.Event {
	t.Helper()
	ev, err := s.SubmitSensorData(deployer, sensorID, assetID, output, timestamp, height)
	if err != nil {
		t.Fatalf("submit for %q: unexpected error: %v", sensorID, err)
	}
	return ev
}

func assertCode(t *testing.T, err error, want Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected rejection with code %d, got nil", uint32(want))
	}
	got, ok := CodeOf(err)
	if !ok {
		t.Fatalf("expected rejection with code %d, got uncoded error: %v", uint32(want), err)
	}
	if got != want {
		t.Fatalf("expected code %d, got %d (%v)", uint32(want), uint32(got), err)
	}
}

func TestNew_DeployerHoldsBothRoles(t *testing.T) {
	s := New(deployer)
	if s.Admin() != deployer {
		t.Fatalf("expected admin %q, got %q", deployer, s.Admin())
	}
	if s.Operator() != deployer {
		t.Fatalf("expected operator %q, got %q", deployer, s.Operator())
	}
	if s.Paused() {
		t.Fatalf("expected unpaused state at deployment")
	}
	if s.NextEventID() != 0 {
		t.Fatalf("expected next event id 0, got %d", s.NextEventID())
	}
}

func TestLoad_RebuildsLookups(t *testing.T) {
	data := uint64(75)
	snap := Snapshot{
		Admin:       deployer,
		Operator:    models.Identity("op"),
		Paused:      true,
		NextEventID: 2,
		Sensors: []models.Sensor{
			{SensorID: "s1", Owner: "owner-s1", EnergyType: models.EnergySolar, IsActive: true},
		},
		Metrics: []models.AssetMetrics{
			{AssetID: "asset-1", TotalEnergyOutput: models.Uint128From(75), LastUpdateTimestamp: 900, LastEnergyOutput: 75, EnergyType: models.EnergySolar},
		},
		Readings: []models.SensorReading{
			{SensorID: "s1", Timestamp: 900, EnergyOutput: 75, Verified: true, ReportedBy: "op"},
		},
		Events: []models.Event{
			{EventID: 0, Type: models.EventSensorRegistered, SensorID: "s1", Timestamp: 10},
			{EventID: 1, Type: models.EventDataSubmitted, SensorID: "s1", AssetID: "asset-1", Timestamp: 950, Data: &data},
		},
	}
	s := Load(snap)

	if s.Operator() != "op" || !s.Paused() || s.NextEventID() != 2 {
		t.Fatalf("state row not restored: operator=%q paused=%v next=%d", s.Operator(), s.Paused(), s.NextEventID())
	}
	if got := s.Sensor("s1"); !got.IsActive || got.EnergyType != models.EnergySolar {
		t.Fatalf("sensor not restored: %#v", got)
	}
	if got := s.AssetMetrics("asset-1"); got.TotalEnergyOutput.String() != "75" || got.LastUpdateTimestamp != 900 {
		t.Fatalf("metrics not restored: %#v", got)
	}
	if got := s.Reading("s1", 900); !got.Verified || got.EnergyOutput != 75 {
		t.Fatalf("reading not restored: %#v", got)
	}
	if got := s.Event(1); got.Type != models.EventDataSubmitted || got.Data == nil || *got.Data != 75 {
		t.Fatalf("event not restored: %#v", got)
	}
	if s.SensorCount() != 1 || s.AssetCount() != 1 || s.ReadingCount() != 1 || s.EventCount() != 2 {
		t.Fatalf("counts wrong: %d sensors %d assets %d readings %d events",
			s.SensorCount(), s.AssetCount(), s.ReadingCount(), s.EventCount())
	}
}

func TestLoad_ContinuesEventSequence(t *testing.T) {
	s := Load(Snapshot{
		Admin:       deployer,
		Operator:    deployer,
		NextEventID: 1,
		Events: []models.Event{
			{EventID: 0, Type: models.EventSensorRegistered, SensorID: "s0", Timestamp: 1},
		},
		Sensors: []models.Sensor{
			{SensorID: "s0", Owner: "owner-s0", EnergyType: models.EnergyWind, IsActive: true},
		},
	})
	ev := mustRegister(t, s, "s1", models.EnergySolar, 20)
	if ev.EventID != 1 {
		t.Fatalf("expected event id 1 after restore, got %d", ev.EventID)
	}
}
