package types

import (
	"encoding/json"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestBalanceDecodeNative(t *testing.T) {
	tt := []struct {
		description string
		input       string
		expected    string
	}{
		{
			description: "drops as string",
			input:       `"10000000000"`,
			expected:    "10000000000",
		},
		{
			description: "bare number",
			input:       `1974161`,
			expected:    "1974161",
		},
		{
			description: "fractional number",
			input:       `12.5`,
			expected:    "12.5",
		},
	}

	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			var b Balance
			require.NoError(t, json.Unmarshal([]byte(tc.input), &b))

			got, ok := b.XRP()
			require.True(t, ok)
			require.True(t, got.Equal(decimal.RequireFromString(tc.expected)))
			_, issued := b.Issued()
			require.False(t, issued)

			// re-encoding yields a decimal-equal scalar
			out, err := json.Marshal(b)
			require.NoError(t, err)
			var again Balance
			require.NoError(t, json.Unmarshal(out, &again))
			back, ok := again.XRP()
			require.True(t, ok)
			require.True(t, back.Equal(got))
		})
	}
}

func TestBalanceDecodeIssued(t *testing.T) {
	input := `{"currency":"USD","issuer":"rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B","value":"1.25"}`

	var b Balance
	require.NoError(t, json.Unmarshal([]byte(input), &b))

	iss, ok := b.Issued()
	require.True(t, ok)
	require.Equal(t, "USD", iss.Currency)
	require.Equal(t, "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B", iss.Issuer)
	require.True(t, iss.Value.Equal(decimal.RequireFromString("1.25")))
	_, native := b.XRP()
	require.False(t, native)

	// currency, issuer and decimal-equal value survive a round trip
	out, err := json.Marshal(b)
	require.NoError(t, err)
	var again Balance
	require.NoError(t, json.Unmarshal(out, &again))
	issAgain, ok := again.Issued()
	require.True(t, ok)
	require.Equal(t, iss.Currency, issAgain.Currency)
	require.Equal(t, iss.Issuer, issAgain.Issuer)
	require.True(t, issAgain.Value.Equal(iss.Value))
}

func TestBalanceShapeMismatch(t *testing.T) {
	tt := []struct {
		description string
		input       string
	}{
		{
			description: "object missing value does not fall back to scalar",
			input:       `{"currency":"USD","issuer":"rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"}`,
		},
		{
			description: "object missing issuer",
			input:       `{"currency":"USD","value":"1"}`,
		},
		{
			description: "array",
			input:       `["1000000"]`,
		},
		{
			description: "boolean",
			input:       `true`,
		},
		{
			description: "null",
			input:       `null`,
		},
		{
			description: "non-numeric string",
			input:       `"lots"`,
		},
	}

	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			var b Balance
			err := json.Unmarshal([]byte(tc.input), &b)
			require.ErrorIs(t, err, ErrShapeMismatch)
		})
	}
}

func TestBalanceDrops(t *testing.T) {
	b := XRPBalance(decimal.RequireFromString("10000000000"))
	drops, err := b.Drops()
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(10000000000), drops)

	_, err = XRPBalance(decimal.RequireFromString("12.5")).Drops()
	require.Error(t, err)

	_, err = IssuedBalance("USD", "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B", decimal.New(1, 0)).Drops()
	require.Error(t, err)
}

func TestBalanceZeroValueDoesNotMarshal(t *testing.T) {
	_, err := json.Marshal(Balance{})
	require.Error(t, err)
}
