package types

import (
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// IssuedAmount is a non-native currency amount.
type IssuedAmount struct {
	Currency string          `json:"currency"`
	Issuer   string          `json:"issuer"`
	Value    decimal.Decimal `json:"value"`
}

// Balance is a currency amount: either native XRP (a bare decimal scalar on
// the wire, denominated in drops) or an issued currency object. Exactly one
// variant is set. The wire form carries no tag; variants are told apart by
// shape.
type Balance struct {
	xrp    *decimal.Decimal
	issued *IssuedAmount
}

// XRPBalance returns the native variant holding the given drop amount.
func XRPBalance(v decimal.Decimal) Balance { return Balance{xrp: &v} }

// IssuedBalance returns the issued-currency variant.
func IssuedBalance(currency, issuer string, value decimal.Decimal) Balance {
	return Balance{issued: &IssuedAmount{Currency: currency, Issuer: issuer, Value: value}}
}

// XRP returns the native amount in drops, if this is the native variant.
func (b Balance) XRP() (decimal.Decimal, bool) {
	if b.xrp == nil {
		return decimal.Decimal{}, false
	}
	return *b.xrp, true
}

// Issued returns the issued-currency amount, if this is the issued variant.
func (b Balance) Issued() (IssuedAmount, bool) {
	if b.issued == nil {
		return IssuedAmount{}, false
	}
	return *b.issued, true
}

// Drops returns the native amount as an integer drop count.
func (b Balance) Drops() (sdkmath.Int, error) {
	if b.xrp == nil {
		return sdkmath.Int{}, fmt.Errorf("drops: not a native XRP balance")
	}
	i, ok := sdkmath.NewIntFromString(b.xrp.String())
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("drops: %s is not an integer drop count", b.xrp)
	}
	return i, nil
}

func (b Balance) MarshalJSON() ([]byte, error) {
	switch {
	case b.xrp != nil:
		return json.Marshal(b.xrp)
	case b.issued != nil:
		return json.Marshal(b.issued)
	}
	return nil, fmt.Errorf("balance: no variant set")
}

// UnmarshalJSON resolves the variant structurally: scalars are native XRP,
// objects must carry currency, issuer and value. The scalar check runs
// first; an object missing one of the three keys is a decode failure, not a
// fallback to the scalar variant.
func (b *Balance) UnmarshalJSON(data []byte) error {
	v := gjson.ParseBytes(data)
	switch {
	case v.Type == gjson.String || v.Type == gjson.Number:
		var d decimal.Decimal
		if err := json.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("balance: %w: %v", ErrShapeMismatch, err)
		}
		*b = Balance{xrp: &d}
		return nil
	case v.IsObject():
		for _, key := range []string{"currency", "issuer", "value"} {
			if !v.Get(key).Exists() {
				return fmt.Errorf("balance: %w: object missing %q", ErrShapeMismatch, key)
			}
		}
		var iss IssuedAmount
		if err := json.Unmarshal(data, &iss); err != nil {
			return fmt.Errorf("balance: %w: %v", ErrShapeMismatch, err)
		}
		*b = Balance{issued: &iss}
		return nil
	}
	return fmt.Errorf("balance: %w: expected scalar amount or currency object", ErrShapeMismatch)
}
