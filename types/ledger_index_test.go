package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLedgerIndexDecode(t *testing.T) {
	tt := []struct {
		description  string
		input        string
		expectedKind LedgerIndexKind
	}{
		{
			description:  "ledger_current_index resolves to Current",
			input:        `{"ledger_current_index":1974161}`,
			expectedKind: LedgerIndexCurrent,
		},
		{
			description:  "numeric ledger_index resolves to Number",
			input:        `{"ledger_index":100}`,
			expectedKind: LedgerIndexNumber,
		},
		{
			description:  "string ledger_index resolves to Name",
			input:        `{"ledger_index":"validated"}`,
			expectedKind: LedgerIndexName,
		},
		{
			description:  "numeric string stays the string variant",
			input:        `{"ledger_index":"1974161"}`,
			expectedKind: LedgerIndexName,
		},
		{
			description:  "ledger_current_index wins when both keys present",
			input:        `{"ledger_current_index":7,"ledger_index":"validated"}`,
			expectedKind: LedgerIndexCurrent,
		},
		{
			description:  "sibling keys of an enclosing record are ignored",
			input:        `{"status":"success","validated":false,"ledger_current_index":1974161}`,
			expectedKind: LedgerIndexCurrent,
		},
	}

	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			var idx LedgerIndex
			require.NoError(t, json.Unmarshal([]byte(tc.input), &idx))
			require.Equal(t, tc.expectedKind, idx.Kind())
		})
	}
}

func TestLedgerIndexDecodeValues(t *testing.T) {
	var idx LedgerIndex
	require.NoError(t, json.Unmarshal([]byte(`{"ledger_current_index":1974161}`), &idx))
	cur, ok := idx.Current()
	require.True(t, ok)
	require.True(t, cur.Equal(decimal.NewFromInt(1974161)))

	require.NoError(t, json.Unmarshal([]byte(`{"ledger_index":100}`), &idx))
	num, ok := idx.Number()
	require.True(t, ok)
	require.Equal(t, json.Number("100"), num)
	_, ok = idx.Current()
	require.False(t, ok)

	require.NoError(t, json.Unmarshal([]byte(`{"ledger_index":"closed"}`), &idx))
	name, ok := idx.Name()
	require.True(t, ok)
	require.Equal(t, "closed", name)
}

func TestLedgerIndexShapeMismatch(t *testing.T) {
	tt := []struct {
		description string
		input       string
	}{
		{
			description: "empty object",
			input:       `{}`,
		},
		{
			description: "unrelated keys only",
			input:       `{"status":"success"}`,
		},
		{
			description: "ledger_index of wrong type",
			input:       `{"ledger_index":true}`,
		},
		{
			description: "not an object",
			input:       `42`,
		},
	}

	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			var idx LedgerIndex
			err := json.Unmarshal([]byte(tc.input), &idx)
			require.ErrorIs(t, err, ErrShapeMismatch)
		})
	}
}

func TestLedgerIndexMarshal(t *testing.T) {
	out, err := json.Marshal(NumericLedgerIndex(100))
	require.NoError(t, err)
	require.JSONEq(t, `{"ledger_index":100}`, string(out))

	out, err = json.Marshal(NamedLedgerIndex("validated"))
	require.NoError(t, err)
	require.JSONEq(t, `{"ledger_index":"validated"}`, string(out))

	out, err = json.Marshal(CurrentLedgerIndex(decimal.NewFromInt(1974161)))
	require.NoError(t, err)
	require.JSONEq(t, `{"ledger_current_index":"1974161"}`, string(out))

	_, err = json.Marshal(LedgerIndex{})
	require.Error(t, err)
}
