package oracle

import (
	"testing"

	"energy_oracle/internal/models"
)

func TestSetPaused_AdminOnly(t *testing.T) {
	s := New(deployer)
	if _, err := s.SetPaused(intruder, true); !IsCode(err, CodeNotAuthorized) {
		t.Fatalf("expected code 200 for non-admin, got %v", err)
	}
	if s.Paused() {
		t.Fatalf("rejected call must not flip the flag")
	}
	got, err := s.SetPaused(deployer, true)
	if err != nil || !got {
		t.Fatalf("expected paused=true, got %v err=%v", got, err)
	}
	got, err = s.SetPaused(deployer, false)
	if err != nil || got {
		t.Fatalf("expected paused=false, got %v err=%v", got, err)
	}
}

func TestSetOracleOperator(t *testing.T) {
	s := New(deployer)
	if err := s.SetOracleOperator(intruder, "op"); !IsCode(err, CodeNotAuthorized) {
		t.Fatalf("expected code 200 for non-admin, got %v", err)
	}
	if err := s.SetOracleOperator(deployer, models.NullIdentity); !IsCode(err, CodeInvalidAsset) {
		t.Fatalf("expected code 202 for null identity, got %v", err)
	}
	if s.Operator() != deployer {
		t.Fatalf("rejected calls must not change operator, got %q", s.Operator())
	}
	if err := s.SetOracleOperator(deployer, "op"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Operator() != "op" {
		t.Fatalf("expected operator %q, got %q", "op", s.Operator())
	}

	// The replaced operator loses submission rights immediately.
	mustRegister(t, s, "s1", models.EnergySolar, 10)
	_, err := s.SubmitSensorData(deployer, "s1", "asset-1", 5, 10, 10)
	assertCode(t, err, CodeNotAuthorized)
	if _, err := s.SubmitSensorData("op", "s1", "asset-1", 5, 10, 10); err != nil {
		t.Fatalf("new operator must be able to submit: %v", err)
	}
}

func TestTransferAdmin(t *testing.T) {
	s := New(deployer)
	if err := s.TransferAdmin(intruder, "next"); !IsCode(err, CodeNotAuthorized) {
		t.Fatalf("expected code 200 for non-admin, got %v", err)
	}
	if err := s.TransferAdmin(deployer, models.NullIdentity); !IsCode(err, CodeInvalidAsset) {
		t.Fatalf("expected code 202 for null identity, got %v", err)
	}
	if err := s.TransferAdmin(deployer, "next"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Admin() != "next" {
		t.Fatalf("expected admin %q, got %q", "next", s.Admin())
	}

	// The old admin is an ordinary caller now; the new one holds the role.
	if _, err := s.RegisterSensor(deployer, "s1", "owner", models.EnergySolar, 5); !IsCode(err, CodeNotAuthorized) {
		t.Fatalf("expected code 200 for former admin, got %v", err)
	}
	if _, err := s.RegisterSensor("next", "s1", "owner", models.EnergySolar, 5); err != nil {
		t.Fatalf("new admin must be able to register: %v", err)
	}
}

func TestRoleTransitionsAppendNoEvents(t *testing.T) {
	s := New(deployer)
	if _, err := s.SetPaused(deployer, true); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if _, err := s.SetPaused(deployer, false); err != nil {
		t.Fatalf("unpause: %v", err)
	}
	if err := s.SetOracleOperator(deployer, "op"); err != nil {
		t.Fatalf("set operator: %v", err)
	}
	if err := s.TransferAdmin(deployer, "next"); err != nil {
		t.Fatalf("transfer admin: %v", err)
	}
	if s.EventCount() != 0 || s.NextEventID() != 0 {
		t.Fatalf("administrative transitions must not be journaled, got %d events", s.EventCount())
	}
}
