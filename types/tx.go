package types

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// TxParams are the parameters of the tx call.
type TxParams struct {
	Transaction string `json:"transaction"`
	Binary      *bool  `json:"binary,omitempty"`
	MinLedger   *int64 `json:"min_ledger,omitempty"`
	MaxLedger   *int64 `json:"max_ledger,omitempty"`
}

// TxInfo is the tx result: a single transaction looked up by hash. Unlike
// the expanded transactions of a ledger response, the metadata sits under
// the lowercase meta key here.
type TxInfo struct {
	Account         string          `json:"Account"`
	Amount          *Balance        `json:"Amount,omitempty"`
	Destination     *string         `json:"Destination,omitempty"`
	Fee             decimal.Decimal `json:"Fee"`
	Flags           int64           `json:"Flags"`
	Sequence        decimal.Decimal `json:"Sequence"`
	SigningPubKey   string          `json:"SigningPubKey"`
	TransactionType string          `json:"TransactionType"`
	TxnSignature    string          `json:"TxnSignature"`
	Date            *int64          `json:"date,omitempty"`
	Hash            string          `json:"hash"`
	InLedger        *int64          `json:"inLedger,omitempty"`
	LedgerIndex     *int64          `json:"ledger_index,omitempty"`
	Meta            TransactionMeta `json:"meta"`
	Status          string          `json:"status"`
	Validated       *bool           `json:"validated,omitempty"`
}

func (t *TxInfo) UnmarshalJSON(data []byte) error {
	for _, key := range []string{"Account", "meta"} {
		if !gjson.GetBytes(data, key).Exists() {
			return fmt.Errorf("tx: %w: missing %s", ErrShapeMismatch, key)
		}
	}
	type alias TxInfo
	var dec alias
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	*t = TxInfo(dec)
	return nil
}
