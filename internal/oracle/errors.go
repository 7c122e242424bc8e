package oracle

import (
	"errors"
	"fmt"
)

// Code identifies why an operation was rejected. The numeric values are a
// closed, stable contract; callers branch on them.
type Code uint32

const (
	CodeNotAuthorized     Code = 200
	CodeInvalidSensor     Code = 201
	CodeInvalidAsset      Code = 202
	CodeInvalidData       Code = 203
	CodePaused            Code = 204
	CodeAlreadyRegistered Code = 205
	CodeTimestampTooOld   Code = 206
	CodeInvalidEnergyType Code = 207
)

func (c Code) String() string {
	switch c {
	case CodeNotAuthorized:
		return "not-authorized"
	case CodeInvalidSensor:
		return "invalid-sensor"
	case CodeInvalidAsset:
		return "invalid-asset"
	case CodeInvalidData:
		return "invalid-data"
	case CodePaused:
		return "paused"
	case CodeAlreadyRegistered:
		return "already-registered"
	case CodeTimestampTooOld:
		return "timestamp-too-old"
	case CodeInvalidEnergyType:
		return "invalid-energy-type"
	}
	return fmt.Sprintf("code-%d", uint32(c))
}

// Error is a rejection carrying one code from the closed table.
type Error struct {
	Code   Code
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (code %d): %s", e.Code, uint32(e.Code), e.Reason)
}

func reject(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the rejection code from err. Hard failures such as
// ErrTotalOverflow carry no code; ok is false for them.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}

// IsCode reports whether err is a rejection with code c.
func IsCode(err error, c Code) bool {
	got, ok := CodeOf(err)
	return ok && got == c
}

// Hard failures outside the closed code table: the single operation fails
// and the ledger state is left untouched.
var (
	ErrTotalOverflow    = errors.New("total energy output would overflow 128 bits")
	ErrEventIDExhausted = errors.New("event identifier space exhausted")
)
