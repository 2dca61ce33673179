package types

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// AccountInfoParams are the parameters of the account_info call. The ledger
// selector is flattened: its key is emitted next to account and strict.
type AccountInfoParams struct {
	Account     Account     `json:"account"`
	Strict      bool        `json:"strict"`
	LedgerIndex LedgerIndex `json:"-"`
	Queue       bool        `json:"queue"`
}

func (p AccountInfoParams) MarshalJSON() ([]byte, error) {
	type alias AccountInfoParams
	base, err := json.Marshal(alias(p))
	if err != nil {
		return nil, err
	}
	idx, err := p.LedgerIndex.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("account_info params: %w", err)
	}
	return mergeObjects(base, idx)
}

// AccountRootEntry is the only ledger entry type account_info returns.
const AccountRootEntry = "AccountRoot"

// AccountData is the AccountRoot ledger object of the queried account.
type AccountData struct {
	Account           string          `json:"Account"`
	Balance           decimal.Decimal `json:"Balance"`
	Flags             decimal.Decimal `json:"Flags"`
	LedgerEntryType   string          `json:"LedgerEntryType"`
	OwnerCount        decimal.Decimal `json:"OwnerCount"`
	PreviousTxnID     string          `json:"PreviousTxnID"`
	PreviousTxnLgrSeq decimal.Decimal `json:"PreviousTxnLgrSeq"`
	Sequence          decimal.Decimal `json:"Sequence"`
	Index             string          `json:"index"`
}

func (a *AccountData) UnmarshalJSON(data []byte) error {
	type alias AccountData
	var dec alias
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	if dec.LedgerEntryType != AccountRootEntry {
		return fmt.Errorf("account data: %w: LedgerEntryType %q, want %q",
			ErrShapeMismatch, dec.LedgerEntryType, AccountRootEntry)
	}
	*a = AccountData(dec)
	return nil
}

// QueuedTransaction is one pending transaction in a queue summary.
type QueuedTransaction struct {
	LastLedgerSequence *decimal.Decimal `json:"LastLedgerSequence,omitempty"`
	AuthChange         bool             `json:"auth_change"`
	Fee                decimal.Decimal  `json:"fee"`
	FeeLevel           decimal.Decimal  `json:"fee_level"`
	MaxSpendDrops      decimal.Decimal  `json:"max_spend_drops"`
	Seq                decimal.Decimal  `json:"seq"`
}

// QueueData is the fully populated queue summary, as returned by the ledger
// call with queue info requested. All fields are present.
type QueueData struct {
	AuthChangeQueued   bool                `json:"auth_change_queued"`
	HighestSequence    decimal.Decimal     `json:"highest_sequence"`
	LowestSequence     decimal.Decimal     `json:"lowest_sequence"`
	MaxSpendDropsTotal decimal.Decimal     `json:"max_spend_drops_total"`
	Transactions       []QueuedTransaction `json:"transactions"`
	TxnCount           decimal.Decimal     `json:"txn_count"`
}

// AccountQueueData is the per-account queue summary from account_info.
// Every field is optional: the queuing mechanism computes them lazily and
// the node omits what it has not computed yet.
// https://xrpl.org/account_info.html
type AccountQueueData struct {
	AuthChangeQueued   *bool               `json:"auth_change_queued,omitempty"`
	HighestSequence    *decimal.Decimal    `json:"highest_sequence,omitempty"`
	LowestSequence     *decimal.Decimal    `json:"lowest_sequence,omitempty"`
	MaxSpendDropsTotal *decimal.Decimal    `json:"max_spend_drops_total,omitempty"`
	Transactions       []QueuedTransaction `json:"transactions,omitempty"`
	TxnCount           *decimal.Decimal    `json:"txn_count,omitempty"`
}

// AccountInfo is the account_info result: the account's current state plus
// the optional lazily-computed queue summary. The ledger selector is
// flattened into the top-level fields and is required.
type AccountInfo struct {
	AccountData AccountData       `json:"account_data"`
	QueueData   *AccountQueueData `json:"queue_data,omitempty"`
	Status      string            `json:"status"`
	Validated   *bool             `json:"validated,omitempty"`
	LedgerIndex LedgerIndex       `json:"-"`
}

// MarshalJSON merges the ledger selector's key back next to the record's own
// fields, mirroring the flattened decode.
func (a AccountInfo) MarshalJSON() ([]byte, error) {
	type alias AccountInfo
	base, err := json.Marshal(alias(a))
	if err != nil {
		return nil, err
	}
	idx, err := a.LedgerIndex.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("account_info: %w", err)
	}
	return mergeObjects(base, idx)
}

func (a *AccountInfo) UnmarshalJSON(data []byte) error {
	if !gjson.GetBytes(data, "account_data").Exists() {
		return fmt.Errorf("account_info: %w: missing account_data", ErrShapeMismatch)
	}
	type alias AccountInfo
	var dec alias
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	if err := dec.LedgerIndex.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("account_info: %w", err)
	}
	*a = AccountInfo(dec)
	return nil
}
