package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"energy_oracle/internal/models"
)

type StateSQLite struct {
	db DBTX
}

func NewStateSQLite(db DBTX) *StateSQLite {
	return &StateSQLite{db: db}
}

var _ StateRepo = (*StateSQLite)(nil)

const (
	oracleStateRowID = 1

	insertOrUpdateStateSQL = `
		INSERT INTO oracle_state (id, admin, operator, paused, next_event_id)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			admin=excluded.admin,
			operator=excluded.operator,
			paused=excluded.paused,
			next_event_id=excluded.next_event_id
	`

	selectStateSQL = `
		SELECT admin, operator, paused, next_event_id
		FROM oracle_state WHERE id=?
	`
)

// Save updates or inserts the oracle_state row (id always 1).
func (r *StateSQLite) Save(ctx context.Context, st models.OracleState) error {
	_, err := r.db.ExecContext(ctx, insertOrUpdateStateSQL,
		oracleStateRowID,
		string(st.Admin),
		string(st.Operator),
		st.Paused,
		int64(st.NextEventID),
	)
	if err != nil {
		return fmt.Errorf("save oracle state: %w", err)
	}
	return nil
}

// Load fetches the single oracle_state row. A missing row yields the zero
// value; a ledger that has ever been saved has a non-null admin.
func (r *StateSQLite) Load(ctx context.Context) (models.OracleState, error) {
	row := r.db.QueryRowContext(ctx, selectStateSQL, oracleStateRowID)

	var (
		st          models.OracleState
		admin       string
		operator    string
		nextEventID int64
	)
	if err := row.Scan(&admin, &operator, &st.Paused, &nextEventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OracleState{}, nil // no state yet
		}
		return models.OracleState{}, fmt.Errorf("load oracle state: %w", err)
	}
	st.Admin = models.Identity(admin)
	st.Operator = models.Identity(operator)
	st.NextEventID = uint64(nextEventID)
	return st, nil
}
