package service

import (
	"context"
	"errors"
	"time"

	"energy_oracle/internal/models"
	"energy_oracle/internal/oracle"
	"energy_oracle/internal/repository"
)

// ErrWallClockHeight is returned when a manual height is pushed at a
// deployment driven by wall time.
var ErrWallClockHeight = errors.New("height is derived from wall time and cannot be set")

// SetPaused flips the ingestion gate and returns the new flag. Role and
// pause changes update the control row only; they are not journaled.
func (l *Ledger) SetPaused(ctx context.Context, caller models.Identity, pause bool) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := time.Now()

	paused, err := l.core.SetPaused(caller, pause)
	if err == nil {
		err = l.persistLocked(ctx, func(r *repository.Repository) error {
			return r.State.Save(ctx, l.stateRow())
		})
	}
	l.observe.ObserveOperation("set_paused", err, time.Since(start).Seconds())
	if err != nil {
		return l.core.Paused(), err
	}
	l.observe.SetPaused(paused)
	l.log.Infow("pause switch changed", "paused", paused, "caller", caller)
	return paused, nil
}

// SetOperator hands the submission role to newOperator.
func (l *Ledger) SetOperator(ctx context.Context, caller, newOperator models.Identity) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := time.Now()

	err := l.core.SetOracleOperator(caller, newOperator)
	if err == nil {
		err = l.persistLocked(ctx, func(r *repository.Repository) error {
			return r.State.Save(ctx, l.stateRow())
		})
	}
	l.observe.ObserveOperation("set_operator", err, time.Since(start).Seconds())
	if err != nil {
		return err
	}
	l.log.Infow("oracle operator changed", "operator", newOperator, "caller", caller)
	return nil
}

// TransferAdmin hands the admin role to newAdmin. The caller loses it in
// the same step.
func (l *Ledger) TransferAdmin(ctx context.Context, caller, newAdmin models.Identity) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := time.Now()

	err := l.core.TransferAdmin(caller, newAdmin)
	if err == nil {
		err = l.persistLocked(ctx, func(r *repository.Repository) error {
			return r.State.Save(ctx, l.stateRow())
		})
	}
	l.observe.ObserveOperation("transfer_admin", err, time.Since(start).Seconds())
	if err != nil {
		return err
	}
	l.log.Infow("admin transferred", "admin", newAdmin, "caller", caller)
	return nil
}

// SetHeight pushes the manual clock forward. Admin-only, and only
// meaningful when the deployment runs on a manual height source.
func (l *Ledger) SetHeight(caller models.Identity, height uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.core.Admin() {
		return &oracle.Error{Code: oracle.CodeNotAuthorized, Reason: "only the admin can set the height"}
	}
	manual, ok := l.clock.(*ManualClock)
	if !ok {
		return ErrWallClockHeight
	}
	manual.Set(height)
	l.log.Infow("height set", "height", manual.Height(), "caller", caller)
	return nil
}
