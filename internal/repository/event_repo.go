package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"energy_oracle/internal/models"
)

type EventSQLite struct {
	db DBTX
}

func NewEventSQLite(db DBTX) *EventSQLite { return &EventSQLite{db: db} }

var _ EventRepo = (*EventSQLite)(nil)

// Append inserts one journal entry under its already-assigned id. The core
// hands out ids sequentially, so a conflict here means the journal and the
// in-memory ledger have diverged and the insert must fail loudly.
func (r *EventSQLite) Append(ctx context.Context, e models.Event) error {
	var data sql.NullInt64
	if e.Data != nil {
		data = sql.NullInt64{Int64: int64(*e.Data), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO oracle_events (event_id, type, sensor_id, asset_id, timestamp, data)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		int64(e.EventID),
		string(e.Type),
		e.SensorID,
		e.AssetID,
		int64(e.Timestamp),
		data,
	)
	if err != nil {
		return fmt.Errorf("append event %d: %w", e.EventID, err)
	}
	return nil
}

// List returns events with id >= fromID, optionally filtered by type and
// capped at limit, ordered by id ASC.
func (r *EventSQLite) List(ctx context.Context, fromID uint64, typ models.EventType, limit int) ([]models.Event, error) {
	var (
		conds []string
		args  []any
	)

	if fromID > 0 {
		conds = append(conds, "event_id >= ?")
		args = append(args, int64(fromID))
	}
	if typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, string(typ))
	}

	q := `SELECT event_id, type, sensor_id, asset_id, timestamp, data FROM oracle_events`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY event_id ASC"
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	out := make([]models.Event, 0, 64)
	for rows.Next() {
		var (
			ev        models.Event
			eventID   int64
			typ       string
			assetID   sql.NullString
			timestamp int64
			data      sql.NullInt64
		)
		if err := rows.Scan(&eventID, &typ, &ev.SensorID, &assetID, &timestamp, &data); err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		ev.EventID = uint64(eventID)
		ev.Type = models.EventType(typ)
		ev.AssetID = assetID.String
		ev.Timestamp = uint64(timestamp)
		if data.Valid {
			v := uint64(data.Int64)
			ev.Data = &v
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}
	return out, nil
}
