package service

import (
	"context"
	"time"

	"energy_oracle/internal/logger"
	"energy_oracle/internal/models"
	"energy_oracle/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (models.Identity, error)
}

// Registry exposes sensor lifecycle: registration and deactivation are
// admin-only and journaled, lookups never fail.
type Registry interface {
	RegisterSensor(ctx context.Context, caller models.Identity, p RegisterSensorParams) (models.Event, error)
	DeactivateSensor(ctx context.Context, caller models.Identity, sensorID string) (models.Event, error)
	Sensor(sensorID string) models.Sensor
	Sensors() []models.Sensor
}

// Ingestion exposes reading submission for the oracle operator and
// point lookups of stored readings.
type Ingestion interface {
	SubmitReading(ctx context.Context, caller models.Identity, p SubmitReadingParams) (models.Event, error)
	Reading(sensorID string, timestamp uint64) models.SensorReading
}

// EventLog exposes the append-only journal with filtering access.
type EventLog interface {
	Event(id uint64) models.Event
	Events(f EventFilter) []models.Event
}

// Monitoring exposes read-only ledger state: the status snapshot and
// per-asset aggregates.
type Monitoring interface {
	Status() models.OracleStatus
	AssetMetrics(assetID string) models.AssetMetrics
	AssetMetricsList() []models.AssetMetrics
}

// Admin exposes the control surface: pause switch, role handover and the
// manual clock. None of these are journaled.
type Admin interface {
	SetPaused(ctx context.Context, caller models.Identity, pause bool) (bool, error)
	SetOperator(ctx context.Context, caller, newOperator models.Identity) error
	TransferAdmin(ctx context.Context, caller, newAdmin models.Identity) error
	SetHeight(caller models.Identity, height uint64) error
}

// Simulator runs the background loop that feeds demo readings through the
// full admission pipeline. Stop via context cancellation in main() for
// graceful shutdown.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Registry
	Ingestion
	EventLog
	Monitoring
	Admin
	Simulator
}

// NewService wires the shared ledger and the repository layer into the
// service surface. The ledger serves every oracle concern; auth and the
// simulator get their own services.
func NewService(ledger *Ledger, repos *repository.Repository, auth AuthConfig, sim SimulatorConfig, log *logger.Logger) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, auth),
		Registry:      ledger,
		Ingestion:     ledger,
		EventLog:      ledger,
		Monitoring:    ledger,
		Admin:         ledger,
		Simulator:     NewSimulatorService(ledger, sim, log),
	}
}
