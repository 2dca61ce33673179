package types

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// LedgerInfoParams are the parameters of the ledger call. Everything is
// optional; the node falls back to the current ledger.
type LedgerInfoParams struct {
	LedgerHash   *string `json:"ledger_hash,omitempty"`
	LedgerIndex  *string `json:"ledger_index,omitempty"`
	Full         *bool   `json:"full,omitempty"`
	Accounts     *bool   `json:"accounts,omitempty"`
	Transactions *bool   `json:"transactions,omitempty"`
	Expand       *bool   `json:"expand,omitempty"`
	OwnerFunds   *bool   `json:"owner_funds,omitempty"`
	Binary       *bool   `json:"binary,omitempty"`
	Queue        *bool   `json:"queue,omitempty"`
}

// PathStep is one hop of a payment path.
type PathStep struct {
	Currency string          `json:"currency"`
	Issuer   *string         `json:"issuer,omitempty"`
	Type     decimal.Decimal `json:"type"`
	TypeHex  string          `json:"type_hex"`
}

// FinalFields is a modified ledger entry's state after the transaction.
// Which fields appear depends on the entry type.
type FinalFields struct {
	Account    *string          `json:"Account,omitempty"`
	Balance    *Balance         `json:"Balance,omitempty"`
	Flags      int64            `json:"Flags"`
	OwnerCount *decimal.Decimal `json:"OwnerCount,omitempty"`
	Sequence   *decimal.Decimal `json:"Sequence,omitempty"`
}

// PreviousFields holds the pre-transaction values of the fields the
// transaction changed.
type PreviousFields struct {
	Balance  *Balance         `json:"Balance,omitempty"`
	Sequence *decimal.Decimal `json:"Sequence,omitempty"`
}

// ModifiedNode describes a ledger entry the transaction modified.
// PreviousFields is treated as optional: AccountRoot modifications carry it
// in practice, other entry types may not.
type ModifiedNode struct {
	FinalFields       FinalFields      `json:"FinalFields"`
	PreviousFields    *PreviousFields  `json:"PreviousFields,omitempty"`
	LedgerEntryType   string           `json:"LedgerEntryType"`
	LedgerIndex       string           `json:"LedgerIndex"`
	PreviousTxnID     *string          `json:"PreviousTxnID,omitempty"`
	PreviousTxnLgrSeq *decimal.Decimal `json:"PreviousTxnLgrSeq,omitempty"`
}

// AffectedNode wraps one affected ledger entry. Created and deleted nodes
// leave ModifiedNode unset.
type AffectedNode struct {
	ModifiedNode *ModifiedNode `json:"ModifiedNode,omitempty"`
}

// TransactionMeta is the metadata tree recorded when a transaction was
// applied.
type TransactionMeta struct {
	AffectedNodes     []AffectedNode  `json:"AffectedNodes"`
	TransactionIndex  decimal.Decimal `json:"TransactionIndex"`
	TransactionResult string          `json:"TransactionResult"`
}

// Transaction is one expanded transaction of a ledger, metadata included.
// Inner ledger-object fields keep the node's mixed-case names.
type Transaction struct {
	Account         string          `json:"Account"`
	Amount          *Balance        `json:"Amount,omitempty"`
	Destination     *string         `json:"Destination,omitempty"`
	Fee             decimal.Decimal `json:"Fee"`
	Flags           int64           `json:"Flags"`
	Paths           [][]PathStep    `json:"Paths,omitempty"`
	SendMax         *Balance        `json:"SendMax,omitempty"`
	Sequence        decimal.Decimal `json:"Sequence"`
	SigningPubKey   string          `json:"SigningPubKey"`
	TransactionType string          `json:"TransactionType"`
	TxnSignature    string          `json:"TxnSignature"`
	Hash            string          `json:"hash"`
	LedgerIndex     *string         `json:"LedgerIndex,omitempty"`
	Meta            TransactionMeta `json:"metaData"`
	Validated       *bool           `json:"validated,omitempty"`
}

// Ledger is the ledger header. seqNum/totalCoins and
// ledger_index/total_coins are redundant encodings of the same values; the
// node emits both and both are preserved.
type Ledger struct {
	Accepted            bool            `json:"accepted"`
	AccountHash         string          `json:"account_hash"`
	CloseFlags          int64           `json:"close_flags"`
	CloseTime           decimal.Decimal `json:"close_time"`
	CloseTimeHuman      string          `json:"close_time_human"`
	CloseTimeResolution decimal.Decimal `json:"close_time_resolution"`
	Closed              bool            `json:"closed"`
	Hash                string          `json:"hash"`
	LedgerHash          string          `json:"ledger_hash"`
	LedgerIndex         string          `json:"ledger_index"`
	ParentCloseTime     decimal.Decimal `json:"parent_close_time"`
	ParentHash          string          `json:"parent_hash"`
	SeqNum              string          `json:"seqNum"`
	TotalCoins          string          `json:"totalCoins"`
	TotalCoinsDecimal   decimal.Decimal `json:"total_coins"`
	TransactionHash     string          `json:"transaction_hash"`
	Transactions        []Transaction   `json:"transactions,omitempty"`
}

// LedgerInfo is the ledger result: the header plus, when requested, the
// ledger's transaction set.
type LedgerInfo struct {
	Ledger       Ledger          `json:"ledger"`
	LedgerHash   string          `json:"ledger_hash"`
	LedgerIndex  decimal.Decimal `json:"ledger_index"`
	Transactions []Transaction   `json:"transactions,omitempty"`
	Status       string          `json:"status"`
	Validated    bool            `json:"validated"`
}

// UnmarshalJSON rejects a result without the ledger header; a zero-valued
// header must never pass for decoded data.
func (l *LedgerInfo) UnmarshalJSON(data []byte) error {
	if !gjson.GetBytes(data, "ledger").Exists() {
		return fmt.Errorf("ledger: %w: missing ledger", ErrShapeMismatch)
	}
	type alias LedgerInfo
	var dec alias
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	*l = LedgerInfo(dec)
	return nil
}
