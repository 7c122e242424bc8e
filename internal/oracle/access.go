package oracle

import "energy_oracle/internal/models"

// Role predicates. Pure equality against the stored identities; every
// mutating operation starts here.

func (s *State) isAdmin(caller models.Identity) bool {
	return caller == s.admin
}

func (s *State) isOracleOperator(caller models.Identity) bool {
	return caller == s.operator
}

// SetPaused flips the circuit breaker and returns the new value. Admin
// only. The transition is not journaled.
func (s *State) SetPaused(caller models.Identity, pause bool) (bool, error) {
	if !s.isAdmin(caller) {
		return s.paused, reject(CodeNotAuthorized, "caller %q is not admin", caller)
	}
	s.paused = pause
	return s.paused, nil
}

// SetOracleOperator replaces the single identity allowed to submit
// readings. Admin only; the null identity is rejected. Not journaled.
func (s *State) SetOracleOperator(caller, newOperator models.Identity) error {
	if !s.isAdmin(caller) {
		return reject(CodeNotAuthorized, "caller %q is not admin", caller)
	}
	if newOperator.IsNull() {
		return reject(CodeInvalidAsset, "operator cannot be the null identity")
	}
	s.operator = newOperator
	return nil
}

// TransferAdmin hands the admin role to newAdmin. Admin only; the null
// identity is rejected. Not journaled.
func (s *State) TransferAdmin(caller, newAdmin models.Identity) error {
	if !s.isAdmin(caller) {
		return reject(CodeNotAuthorized, "caller %q is not admin", caller)
	}
	if newAdmin.IsNull() {
		return reject(CodeInvalidAsset, "admin cannot be the null identity")
	}
	s.admin = newAdmin
	return nil
}
