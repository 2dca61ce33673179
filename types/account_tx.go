package types

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// AccountTxParams are the parameters of the account_tx call. The ledger
// selector is optional here; when set it is flattened like in
// AccountInfoParams.
type AccountTxParams struct {
	Account        Account      `json:"account"`
	LedgerIndexMin *int64       `json:"ledger_index_min,omitempty"`
	LedgerIndexMax *int64       `json:"ledger_index_max,omitempty"`
	LedgerHash     *string      `json:"ledger_hash,omitempty"`
	LedgerIndex    *LedgerIndex `json:"-"`
	Binary         *bool        `json:"binary,omitempty"`
	Forward        *bool        `json:"forward,omitempty"`
	Limit          *uint64      `json:"limit,omitempty"`
}

func (p AccountTxParams) MarshalJSON() ([]byte, error) {
	type alias AccountTxParams
	base, err := json.Marshal(alias(p))
	if err != nil {
		return nil, err
	}
	if p.LedgerIndex == nil {
		return base, nil
	}
	idx, err := p.LedgerIndex.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("account_tx params: %w", err)
	}
	return mergeObjects(base, idx)
}

// AccountTransactionTx is the subset of per-transaction fields account_tx
// guarantees; the transaction body varies by type and is kept raw in
// AccountTransaction.
type AccountTransactionTx struct {
	LedgerIndex uint64 `json:"ledger_index"`
}

// AccountTransaction is one entry of the account_tx transaction list.
type AccountTransaction struct {
	Meta      json.RawMessage      `json:"meta"`
	Tx        AccountTransactionTx `json:"tx"`
	Validated bool                 `json:"validated"`
}

// AccountTx is the account_tx result: a page of the account's transaction
// history bounded by the resolved ledger-index range.
type AccountTx struct {
	Account        Account              `json:"account"`
	LedgerIndexMin int64                `json:"ledger_index_min"`
	LedgerIndexMax int64                `json:"ledger_index_max"`
	Limit          int64                `json:"limit"`
	Transactions   []AccountTransaction `json:"transactions"`
}

func (a *AccountTx) UnmarshalJSON(data []byte) error {
	for _, key := range []string{"account", "transactions"} {
		if !gjson.GetBytes(data, key).Exists() {
			return fmt.Errorf("account_tx: %w: missing %s", ErrShapeMismatch, key)
		}
	}
	type alias AccountTx
	var dec alias
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	*a = AccountTx(dec)
	return nil
}
