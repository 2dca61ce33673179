package client

import (
	"context"

	"github.com/strangelove-ventures/xrplclient/types"
)

// AccountInfo returns the account's current state plus, when requested, the
// lazily-computed transaction-queue summary.
func (c *Client) AccountInfo(ctx context.Context, params types.AccountInfoParams) (*types.AccountInfo, error) {
	return Call[types.AccountInfoParams, types.AccountInfo](ctx, c, MethodAccountInfo, &params)
}

// AccountTx returns a page of the account's transaction history, bounded by
// an explicit or implicit ledger-index range.
func (c *Client) AccountTx(ctx context.Context, params types.AccountTxParams) (*types.AccountTx, error) {
	return Call[types.AccountTxParams, types.AccountTx](ctx, c, MethodAccountTx, &params)
}

// Ledger returns a ledger header and, when requested, its full transaction
// set with metadata.
func (c *Client) Ledger(ctx context.Context, params types.LedgerInfoParams) (*types.LedgerInfo, error) {
	return Call[types.LedgerInfoParams, types.LedgerInfo](ctx, c, MethodLedger, &params)
}

// LedgerCurrent returns the sequence of the in-progress ledger as the
// Current ledger-index variant.
func (c *Client) LedgerCurrent(ctx context.Context) (*types.LedgerIndex, error) {
	return Call[struct{}, types.LedgerIndex](ctx, c, MethodLedgerCurrent, nil)
}

// Tx looks up a single transaction by hash, metadata included.
func (c *Client) Tx(ctx context.Context, params types.TxParams) (*types.TxInfo, error) {
	return Call[types.TxParams, types.TxInfo](ctx, c, MethodTx, &params)
}

// ServerInfo reports the node's build, state and validated-ledger summary.
func (c *Client) ServerInfo(ctx context.Context) (*types.ServerInfo, error) {
	return Call[struct{}, types.ServerInfo](ctx, c, MethodServerInfo, nil)
}
