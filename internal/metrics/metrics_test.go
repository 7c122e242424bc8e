package metrics

import (
	"errors"
	"testing"

	"energy_oracle/internal/oracle"
)

func TestOutcomeLabels(t *testing.T) {
	if got := outcome(nil); got != "ok" {
		t.Fatalf("nil error: got %q", got)
	}
	rejection := func() error {
		s := oracle.New("admin")
		_, err := s.RegisterSensor("someone-else", "s1", "owner", "solar", 1)
		return err
	}()
	if got := outcome(rejection); got != "not-authorized" {
		t.Fatalf("rejection: got %q", got)
	}
	if got := outcome(errors.New("disk full")); got != "internal" {
		t.Fatalf("plain error: got %q", got)
	}
	if got := outcome(oracle.ErrTotalOverflow); got != "internal" {
		t.Fatalf("hard failure: got %q", got)
	}
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	// Must not panic.
	m.ObserveOperation("submit", nil, 0.1)
	m.EventAppended()
	m.AddEnergyAdmitted(100)
	m.SetPaused(true)
}
