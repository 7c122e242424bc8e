package service

import "energy_oracle/internal/models"

const (
	defaultEventPage = 100
	maxEventPage     = 1000
)

// Event returns the journal entry by id, or the zero value when absent.
func (l *Ledger) Event(id uint64) models.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.core.Event(id)
}

// Events returns a page of journal entries matching the filter, in id
// order. The limit applies after type filtering and is capped.
func (l *Ledger) Events(f EventFilter) []models.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	limit := f.Limit
	if limit <= 0 {
		limit = defaultEventPage
	}
	if limit > maxEventPage {
		limit = maxEventPage
	}

	if f.Type == "" {
		return l.core.Events(f.From, limit)
	}

	out := make([]models.Event, 0, limit)
	total := uint64(l.core.EventCount())
	for id := f.From; id < total && len(out) < limit; id++ {
		ev := l.core.Event(id)
		if ev.Type == f.Type {
			out = append(out, ev)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
