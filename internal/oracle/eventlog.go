package oracle

import (
	"math"

	"energy_oracle/internal/models"
)

// checkEventCapacity guards the identifier space. Exhaustion is a hard
// failure surfaced before any write so the operation stays atomic.
func (s *State) checkEventCapacity() error {
	if s.nextEventID == math.MaxUint64 {
		return ErrEventIDExhausted
	}
	return nil
}

// logEvent appends the next journal entry at the current logical height.
// Ids are assigned sequentially from 0 and never reused; callers have
// already run checkEventCapacity.
func (s *State) logEvent(t models.EventType, sensorID, assetID string, data *uint64, height uint64) models.Event {
	ev := models.Event{
		EventID:   s.nextEventID,
		Type:      t,
		SensorID:  sensorID,
		AssetID:   assetID,
		Timestamp: height,
		Data:      data,
	}
	s.nextEventID++
	s.events = append(s.events, ev)
	return ev
}

// Event returns the stored entry, or the zero sentinel when absent.
func (s *State) Event(id uint64) models.Event {
	if id >= uint64(len(s.events)) {
		return models.Event{}
	}
	return s.events[id]
}

// Events returns up to limit entries with id >= from, in id order. A
// non-positive limit means no cap.
func (s *State) Events(from uint64, limit int) []models.Event {
	if from >= uint64(len(s.events)) {
		return nil
	}
	tail := s.events[from:]
	if limit > 0 && limit < len(tail) {
		tail = tail[:limit]
	}
	out := make([]models.Event, len(tail))
	copy(out, tail)
	return out
}

func (s *State) EventCount() int { return len(s.events) }
