package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Classic addresses start with r and are 25-35 characters long.
// https://xrpl.org/basic-data-types.html#addresses
const (
	accountMinLength = 25
	accountMaxLength = 35
	accountPrefix    = 'r'
)

var (
	ErrAccountTooShort  = errors.New("account address too short")
	ErrAccountBadPrefix = errors.New("account address does not start with r")
	ErrAccountTooLong   = errors.New("account address too long")
)

// Account is an XRPL classic address. The zero value is invalid; construct
// one with NewAccount. Only the shape is checked (length and first
// character), not the base58 checksum; the addresscodec package has the
// full check.
type Account struct {
	addr string
}

// NewAccount validates the address shape and wraps it unchanged.
func NewAccount(s string) (Account, error) {
	if len(s) < accountMinLength {
		return Account{}, fmt.Errorf("%w: %q is shorter than %d chars", ErrAccountTooShort, s, accountMinLength)
	}
	if s[0] != accountPrefix {
		return Account{}, fmt.Errorf("%w: %q", ErrAccountBadPrefix, s)
	}
	if len(s) > accountMaxLength {
		return Account{}, fmt.Errorf("%w: %q is longer than %d chars", ErrAccountTooLong, s, accountMaxLength)
	}
	return Account{addr: s}, nil
}

// MustAccount is NewAccount for hardcoded addresses; it panics on invalid
// input.
func MustAccount(s string) Account {
	a, err := NewAccount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Account) String() string { return a.addr }

func (a Account) MarshalJSON() ([]byte, error) { return json.Marshal(a.addr) }

// UnmarshalJSON accepts any JSON string. Node responses are decoded as-is;
// validation happens only at construction time.
func (a *Account) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &a.addr)
}
