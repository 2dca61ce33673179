package types

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// LedgerIndexKind identifies the resolved LedgerIndex variant.
type LedgerIndexKind int

const (
	// LedgerIndexCurrent is the most recent in-progress ledger,
	// keyed ledger_current_index.
	LedgerIndexCurrent LedgerIndexKind = iota + 1
	// LedgerIndexNumber is an explicit sequence number, keyed ledger_index.
	LedgerIndexNumber
	// LedgerIndexName is a symbolic value such as "validated" or "closed",
	// or a numeric string, keyed ledger_index.
	LedgerIndexName
)

// LedgerIndex selects which ledger version a request or response refers to.
// One of three variants is set; on the wire each is a single key, so the
// type usually appears flattened into an enclosing record rather than
// nested. The zero value has no variant and does not marshal.
type LedgerIndex struct {
	current *decimal.Decimal
	number  *json.Number
	name    *string
}

// CurrentLedgerIndex wraps the sequence of an in-progress ledger.
func CurrentLedgerIndex(seq decimal.Decimal) LedgerIndex {
	return LedgerIndex{current: &seq}
}

// NumericLedgerIndex selects an explicit ledger sequence number.
func NumericLedgerIndex(seq int64) LedgerIndex {
	n := json.Number(fmt.Sprintf("%d", seq))
	return LedgerIndex{number: &n}
}

// NamedLedgerIndex selects a ledger by shortcut string, e.g. "validated",
// "closed" or "current".
func NamedLedgerIndex(name string) LedgerIndex {
	return LedgerIndex{name: &name}
}

// Kind reports which variant is set, or 0 for the zero value.
func (l LedgerIndex) Kind() LedgerIndexKind {
	switch {
	case l.current != nil:
		return LedgerIndexCurrent
	case l.number != nil:
		return LedgerIndexNumber
	case l.name != nil:
		return LedgerIndexName
	}
	return 0
}

// Current returns the in-progress ledger sequence, if set.
func (l LedgerIndex) Current() (decimal.Decimal, bool) {
	if l.current == nil {
		return decimal.Decimal{}, false
	}
	return *l.current, true
}

// Number returns the explicit sequence number, if set.
func (l LedgerIndex) Number() (json.Number, bool) {
	if l.number == nil {
		return "", false
	}
	return *l.number, true
}

// Name returns the shortcut string, if set.
func (l LedgerIndex) Name() (string, bool) {
	if l.name == nil {
		return "", false
	}
	return *l.name, true
}

func (l LedgerIndex) MarshalJSON() ([]byte, error) {
	switch {
	case l.current != nil:
		return json.Marshal(struct {
			C decimal.Decimal `json:"ledger_current_index"`
		}{*l.current})
	case l.number != nil:
		return json.Marshal(struct {
			N json.Number `json:"ledger_index"`
		}{*l.number})
	case l.name != nil:
		return json.Marshal(struct {
			S string `json:"ledger_index"`
		}{*l.name})
	}
	return nil, fmt.Errorf("ledger index: no variant set")
}

// UnmarshalJSON resolves the variant structurally. Order matters and is
// fixed: ledger_current_index first, then a numeric ledger_index, then the
// string form. Keys belonging to an enclosing record are ignored, which is
// what lets this type decode from a flattened position.
func (l *LedgerIndex) UnmarshalJSON(data []byte) error {
	v := gjson.ParseBytes(data)
	if !v.IsObject() {
		return fmt.Errorf("ledger index: %w: expected object", ErrShapeMismatch)
	}
	if cur := v.Get("ledger_current_index"); cur.Exists() {
		var wrap struct {
			C decimal.Decimal `json:"ledger_current_index"`
		}
		if err := json.Unmarshal(data, &wrap); err != nil {
			return fmt.Errorf("ledger index: %w: %v", ErrShapeMismatch, err)
		}
		*l = LedgerIndex{current: &wrap.C}
		return nil
	}
	idx := v.Get("ledger_index")
	switch idx.Type {
	case gjson.Number:
		n := json.Number(idx.Raw)
		*l = LedgerIndex{number: &n}
		return nil
	case gjson.String:
		s := idx.String()
		*l = LedgerIndex{name: &s}
		return nil
	}
	return fmt.Errorf("ledger index: %w: no ledger_current_index or ledger_index key", ErrShapeMismatch)
}
