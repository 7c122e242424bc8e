package models

import (
	"database/sql/driver"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// Uint128 is an unsigned 128-bit counter for lifetime energy totals, which
// outgrow uint64 over the ledger's horizon. It marshals as a decimal string
// in both JSON and SQL so no reader ever truncates it.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

func Uint128From(v uint64) Uint128 { return Uint128{Lo: v} }

// Add returns u+v and reports whether the sum wrapped past 2^128-1.
func (u Uint128) Add(v Uint128) (Uint128, bool) {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, overflow := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}, overflow != 0
}

func (u Uint128) AddUint64(v uint64) (Uint128, bool) {
	return u.Add(Uint128{Lo: v})
}

func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi != v.Hi:
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	case u.Lo != v.Lo:
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	}
	return 0
}

func (u Uint128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(u.Lo))
	return b.String()
}

// ParseUint128 parses a non-negative decimal string of at most 128 bits.
func ParseUint128(s string) (Uint128, error) {
	if s == "" {
		return Uint128{}, fmt.Errorf("parse uint128: empty string")
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return Uint128{Lo: v}, nil
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok || b.Sign() < 0 || b.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("parse uint128: invalid value %q", s)
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(b, 64)
	return Uint128{Hi: hi.Uint64(), Lo: lo.Uint64()}, nil
}

func (u Uint128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Uint128) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := ParseUint128(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Value implements driver.Valuer; the counter is stored as TEXT.
func (u Uint128) Value() (driver.Value, error) {
	return u.String(), nil
}

func (u *Uint128) Scan(src any) error {
	switch s := src.(type) {
	case string:
		v, err := ParseUint128(s)
		if err != nil {
			return err
		}
		*u = v
		return nil
	case []byte:
		v, err := ParseUint128(string(s))
		if err != nil {
			return err
		}
		*u = v
		return nil
	case int64:
		if s < 0 {
			return fmt.Errorf("scan uint128: negative value %d", s)
		}
		*u = Uint128{Lo: uint64(s)}
		return nil
	default:
		return fmt.Errorf("scan uint128: unsupported type %T", src)
	}
}
