// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"encoding/hex"

	"lukechampine.com/uint128"
)

// AccountID names the execution context a batch of actions runs against.
// The package never validates it; the host does.
type AccountID string

// Index is the opaque handle identifier assigned by the host scheduler.
type Index uint64

// Gas is a gas limit attached to a function call.
type Gas uint64

// PublicKey is the encoded public key (curve tag followed by key data).
type PublicKey []byte

// MarshalText encodes the key as hex.
func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(k)), nil
}

// Balance is an unsigned 128-bit token amount.
type Balance struct {
	v uint128.Uint128
}

// NewBalance returns a Balance holding n.
func NewBalance(n uint64) Balance {
	return Balance{v: uint128.From64(n)}
}

// BalanceFrom wraps a 128-bit value.
func BalanceFrom(v uint128.Uint128) Balance {
	return Balance{v: v}
}

// ParseBalance parses a base-10 amount.
func ParseBalance(s string) (Balance, error) {
	v, err := uint128.FromString(s)
	if err != nil {
		return Balance{}, err
	}
	return Balance{v: v}, nil
}

// Uint128 returns the underlying 128-bit value.
func (b Balance) Uint128() uint128.Uint128 {
	return b.v
}

// Equal reports whether b and o hold the same amount.
func (b Balance) Equal(o Balance) bool {
	return b.v == o.v
}

// String returns the amount in base 10.
func (b Balance) String() string {
	return b.v.String()
}

// MarshalText encodes the amount as a base-10 string.
// JSON and YAML encoders pick it up, so amounts above 2^53 survive.
func (b Balance) MarshalText() ([]byte, error) {
	return []byte(b.v.String()), nil
}

// UnmarshalText parses a base-10 string.
func (b *Balance) UnmarshalText(text []byte) error {
	v, err := uint128.FromString(string(text))
	if err != nil {
		return err
	}
	b.v = v
	return nil
}
