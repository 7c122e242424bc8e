package oracle

import "energy_oracle/internal/models"

// MaxSensorDataAge is the freshness window in logical height units. A
// reading whose timestamp lags the current height by more than this is
// rejected. Only the lower bound is checked; future timestamps pass.
const MaxSensorDataAge = 3600

// SubmitSensorData admits one reading. The checks run in a fixed order and
// the first failure wins, so a call with several violations always surfaces
// the same code. Nothing is written unless every check passes.
func (s *State) SubmitSensorData(caller models.Identity, sensorID, assetID string, energyOutput, timestamp, height uint64) (models.Event, error) {
	if s.paused {
		return models.Event{}, reject(CodePaused, "oracle is paused")
	}
	if !s.isOracleOperator(caller) {
		return models.Event{}, reject(CodeNotAuthorized, "caller %q is not the oracle operator", caller)
	}
	if energyOutput == 0 {
		return models.Event{}, reject(CodeInvalidData, "energy output must be positive")
	}
	if timestamp < height && height-timestamp > MaxSensorDataAge {
		return models.Event{}, reject(CodeTimestampTooOld, "timestamp %d exceeds max age %d at height %d", timestamp, MaxSensorDataAge, height)
	}
	sensor, ok := s.sensors[sensorID]
	if !ok || !sensor.IsActive {
		return models.Event{}, reject(CodeInvalidSensor, "sensor %q is not active", sensorID)
	}

	metrics := s.assetMetricsOrInit(assetID, sensor.EnergyType)
	total, overflow := metrics.TotalEnergyOutput.AddUint64(energyOutput)
	if overflow {
		return models.Event{}, ErrTotalOverflow
	}
	if err := s.checkEventCapacity(); err != nil {
		return models.Event{}, err
	}

	s.readings[ReadingKey{SensorID: sensorID, Timestamp: timestamp}] = models.SensorReading{
		SensorID:     sensorID,
		Timestamp:    timestamp,
		EnergyOutput: energyOutput,
		Verified:     true,
		ReportedBy:   caller,
	}
	metrics.TotalEnergyOutput = total
	metrics.LastUpdateTimestamp = timestamp
	metrics.LastEnergyOutput = energyOutput
	s.metrics[assetID] = metrics

	output := energyOutput
	return s.logEvent(models.EventDataSubmitted, sensorID, assetID, &output, height), nil
}

// Reading returns the stored reading for (sensorID, timestamp), or the zero
// sentinel when absent.
func (s *State) Reading(sensorID string, timestamp uint64) models.SensorReading {
	return s.readings[ReadingKey{SensorID: sensorID, Timestamp: timestamp}]
}
