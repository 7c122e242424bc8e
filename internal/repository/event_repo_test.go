package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"energy_oracle/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestEventAppend_WithData(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewEventSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO oracle_events (event_id, type, sensor_id, asset_id, timestamp, data)
		VALUES (?, ?, ?, ?, ?, ?)
	`)).
		WithArgs(7, "data-submitted", "s1", "asset-1", 1000, 75).
		WillReturnResult(sqlmock.NewResult(0, 1))

	data := uint64(75)
	err := repo.Append(ctx(t), models.Event{
		EventID:   7,
		Type:      models.EventDataSubmitted,
		SensorID:  "s1",
		AssetID:   "asset-1",
		Timestamp: 1000,
		Data:      &data,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEventAppend_NilDataBecomesNull(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewEventSQLite(db)

	mock.ExpectExec("INSERT INTO oracle_events").
		WithArgs(0, "sensor-registered", "s1", "", 42, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(ctx(t), models.Event{
		EventID:   0,
		Type:      models.EventSensorRegistered,
		SensorID:  "s1",
		Timestamp: 42,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEventAppend_DBError(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewEventSQLite(db)

	mock.ExpectExec("INSERT INTO oracle_events").
		WillReturnError(errors.New("down"))

	err := repo.Append(ctx(t), models.Event{EventID: 3, Type: models.EventSensorDeactivated, SensorID: "s1", Timestamp: 9})
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEventList_NoFilters(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewEventSQLite(db)

	rows := sqlmock.NewRows([]string{"event_id", "type", "sensor_id", "asset_id", "timestamp", "data"}).
		AddRow(0, "sensor-registered", "s1", nil, 10, nil).
		AddRow(1, "data-submitted", "s1", "asset-1", 1000, 75)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT event_id, type, sensor_id, asset_id, timestamp, data FROM oracle_events ORDER BY event_id ASC`)).
		WillReturnRows(rows)

	got, err := repo.List(ctx(t), 0, "", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2, got %d", len(got))
	}
	if got[0].EventID != 0 || got[0].Data != nil || got[0].AssetID != "" {
		t.Fatalf("unexpected first event: %+v", got[0])
	}
	if got[1].EventID != 1 || got[1].Data == nil || *got[1].Data != 75 || got[1].AssetID != "asset-1" {
		t.Fatalf("unexpected second event: %+v", got[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEventList_WithFilters_OrderAndArgs(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewEventSQLite(db)

	query := `SELECT event_id, type, sensor_id, asset_id, timestamp, data FROM oracle_events WHERE event_id >= ? AND type = ? ORDER BY event_id ASC LIMIT ?`

	rows := sqlmock.NewRows([]string{"event_id", "type", "sensor_id", "asset_id", "timestamp", "data"}).
		AddRow(5, "data-submitted", "s2", "asset-2", 2000, 12).
		AddRow(6, "data-submitted", "s2", "asset-2", 2001, 13)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(5, "data-submitted", 10).
		WillReturnRows(rows)

	got, err := repo.List(ctx(t), 5, models.EventDataSubmitted, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].EventID != 5 || got[1].EventID != 6 {
		t.Fatalf("unexpected results: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEventList_ScanError(t *testing.T) {
	t.Parallel()

	db, mock := newMock(t)
	repo := NewEventSQLite(db)

	rows := sqlmock.NewRows([]string{"event_id", "type", "sensor_id", "asset_id", "timestamp", "data"}).
		// timestamp wrong type to force scan error
		AddRow(0, "sensor-registered", "s1", nil, "not-a-number", nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT event_id, type, sensor_id, asset_id, timestamp, data FROM oracle_events ORDER BY event_id ASC`)).
		WillReturnRows(rows)

	_, err := repo.List(ctx(t), 0, "", 0)
	if err == nil {
		t.Fatalf("expected scan error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
