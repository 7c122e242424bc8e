package oracle

import (
	"sort"

	"energy_oracle/internal/models"
)

// RegisterSensor records a new sensor owned by owner. Admin only. A sensor
// identifier is assigned at most once; re-registration is rejected.
func (s *State) RegisterSensor(caller models.Identity, sensorID string, owner models.Identity, energyType models.EnergyType, height uint64) (models.Event, error) {
	if !s.isAdmin(caller) {
		return models.Event{}, reject(CodeNotAuthorized, "caller %q is not admin", caller)
	}
	if !energyType.Valid() {
		return models.Event{}, reject(CodeInvalidEnergyType, "unknown energy type %q", energyType)
	}
	if _, ok := s.sensors[sensorID]; ok {
		return models.Event{}, reject(CodeAlreadyRegistered, "sensor %q already registered", sensorID)
	}
	if err := s.checkEventCapacity(); err != nil {
		return models.Event{}, err
	}
	s.sensors[sensorID] = models.Sensor{
		SensorID:   sensorID,
		Owner:      owner,
		EnergyType: energyType,
		IsActive:   true,
	}
	return s.logEvent(models.EventSensorRegistered, sensorID, "", nil, height), nil
}

// DeactivateSensor retires a sensor permanently; owner and energy type stay
// on record. There is no reactivation path. Admin only.
func (s *State) DeactivateSensor(caller models.Identity, sensorID string, height uint64) (models.Event, error) {
	if !s.isAdmin(caller) {
		return models.Event{}, reject(CodeNotAuthorized, "caller %q is not admin", caller)
	}
	sensor, ok := s.sensors[sensorID]
	if !ok {
		return models.Event{}, reject(CodeInvalidSensor, "sensor %q not registered", sensorID)
	}
	if err := s.checkEventCapacity(); err != nil {
		return models.Event{}, err
	}
	sensor.IsActive = false
	s.sensors[sensorID] = sensor
	return s.logEvent(models.EventSensorDeactivated, sensorID, "", nil, height), nil
}

// Sensor returns the stored record, or the zero sentinel when absent.
// Lookups never fail; absence is encoded in the value.
func (s *State) Sensor(sensorID string) models.Sensor {
	return s.sensors[sensorID]
}

// SensorList returns every registered sensor ordered by identifier.
func (s *State) SensorList() []models.Sensor {
	out := make([]models.Sensor, 0, len(s.sensors))
	for _, sensor := range s.sensors {
		out = append(out, sensor)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SensorID < out[j].SensorID })
	return out
}
