package service

import (
	"context"
	"math/rand/v2"
	"time"

	"energy_oracle/internal/logger"
	"energy_oracle/internal/models"
	"energy_oracle/internal/oracle"
)

// ----------- Simulation constants -----------
const (
	simBaseOutput  = 40 // minimum energy output per demo reading
	simJitterSpan  = 25 // random spread added on top
	simSolarSensor = "sim-solar-01"
	simWindSensor  = "sim-wind-01"
)

// SimSensor describes one demo sensor the simulator drives.
type SimSensor struct {
	ID         string
	Owner      models.Identity
	EnergyType models.EnergyType
	AssetID    string
}

// SimulatorConfig names the identities the simulator acts as. Admin must
// hold the ledger admin role for registration, Operator the submission
// role.
type SimulatorConfig struct {
	Admin    models.Identity
	Operator models.Identity
	Sensors  []SimSensor
}

// SimulatorService feeds synthetic readings through the full admission
// pipeline so a demo deployment has live data.
type SimulatorService struct {
	ledger *Ledger
	cfg    SimulatorConfig
	log    *logger.Logger
	next   int
}

// NewSimulatorService returns a simulator with a default two-sensor park
// when none is configured.
func NewSimulatorService(ledger *Ledger, cfg SimulatorConfig, log *logger.Logger) *SimulatorService {
	if len(cfg.Sensors) == 0 {
		cfg.Sensors = []SimSensor{
			{ID: simSolarSensor, Owner: cfg.Operator, EnergyType: models.EnergySolar, AssetID: "sim-plant-solar"},
			{ID: simWindSensor, Owner: cfg.Operator, EnergyType: models.EnergyWind, AssetID: "sim-plant-wind"},
		}
	}
	return &SimulatorService{ledger: ledger, cfg: cfg, log: log}
}

// Run registers the demo sensors and then ticks at the given interval until
// ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	s.ensureSensors(ctx)
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.step(ctx)
		}
	}
}

// ensureSensors registers every configured sensor that is not in the
// ledger yet. A concurrent registration elsewhere is fine.
func (s *SimulatorService) ensureSensors(ctx context.Context) {
	for _, sim := range s.cfg.Sensors {
		if s.ledger.Sensor(sim.ID).SensorID != "" {
			continue
		}
		_, err := s.ledger.RegisterSensor(ctx, s.cfg.Admin, RegisterSensorParams{
			SensorID:   sim.ID,
			Owner:      sim.Owner,
			EnergyType: sim.EnergyType,
		})
		if err != nil && !oracle.IsCode(err, oracle.CodeAlreadyRegistered) {
			s.log.Warnw("simulator could not register sensor", "sensor_id", sim.ID, "error", err)
		}
	}
}

// step submits one reading for the next sensor in round-robin order.
func (s *SimulatorService) step(ctx context.Context) {
	if len(s.cfg.Sensors) == 0 {
		return
	}
	sim := s.cfg.Sensors[s.next%len(s.cfg.Sensors)]
	s.next++

	_, err := s.ledger.SubmitReading(ctx, s.cfg.Operator, SubmitReadingParams{
		SensorID:     sim.ID,
		AssetID:      sim.AssetID,
		EnergyOutput: simBaseOutput + rand.Uint64N(simJitterSpan),
		Timestamp:    s.ledger.Status().Height,
	})
	switch {
	case err == nil:
	case oracle.IsCode(err, oracle.CodePaused):
		s.log.Debugw("simulator reading skipped while paused", "sensor_id", sim.ID)
	default:
		s.log.Warnw("simulator reading rejected", "sensor_id", sim.ID, "error", err)
	}
}
