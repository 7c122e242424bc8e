package models

// Identity names a caller or sensor owner. The transport layer resolves it
// (JWT subject for the HTTP API) before the oracle ever sees the call.
type Identity string

// NullIdentity is the reserved burn identity: returned when a lookup misses
// and rejected as the target of any role transfer.
const NullIdentity Identity = ""

func (i Identity) IsNull() bool { return i == NullIdentity }
