package main

import (
	"github.com/spf13/cobra"

	"github.com/strangelove-ventures/xrplclient/types"
)

func newAccountInfoCmd(a *app) *cobra.Command {
	var (
		strict bool
		queue  bool
		ledger string
	)
	cmd := &cobra.Command{
		Use:   "account-info <address>",
		Short: "Show an account's current state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := types.NewAccount(args[0])
			if err != nil {
				return err
			}
			info, err := a.rpc.AccountInfo(cmd.Context(), types.AccountInfoParams{
				Account:     account,
				Strict:      strict,
				LedgerIndex: parseLedgerIndex(ledger),
				Queue:       queue,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, info)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "only accept a classic address, not a public key")
	cmd.Flags().BoolVar(&queue, "queue", false, "include the queue summary")
	cmd.Flags().StringVar(&ledger, "ledger", "validated", "ledger to query: validated, closed, current or a sequence number")
	return cmd
}

func newAccountTxCmd(a *app) *cobra.Command {
	var (
		min     int64
		max     int64
		limit   uint64
		forward bool
	)
	cmd := &cobra.Command{
		Use:   "account-tx <address>",
		Short: "List an account's transaction history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := types.NewAccount(args[0])
			if err != nil {
				return err
			}
			params := types.AccountTxParams{Account: account}
			if cmd.Flags().Changed("min") {
				params.LedgerIndexMin = ptr(min)
			}
			if cmd.Flags().Changed("max") {
				params.LedgerIndexMax = ptr(max)
			}
			if cmd.Flags().Changed("limit") {
				params.Limit = ptr(limit)
			}
			if forward {
				params.Forward = ptr(true)
			}
			txs, err := a.rpc.AccountTx(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(cmd, txs)
		},
	}
	cmd.Flags().Int64Var(&min, "min", -1, "earliest ledger index to include")
	cmd.Flags().Int64Var(&max, "max", -1, "latest ledger index to include")
	cmd.Flags().Uint64Var(&limit, "limit", 0, "maximum number of transactions")
	cmd.Flags().BoolVar(&forward, "forward", false, "list oldest first")
	return cmd
}

func newLedgerCmd(a *app) *cobra.Command {
	var (
		hash         string
		index        string
		transactions bool
		expand       bool
		queue        bool
	)
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show a ledger header, optionally with its transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := types.LedgerInfoParams{}
			if hash != "" {
				params.LedgerHash = ptr(hash)
			}
			if index != "" {
				params.LedgerIndex = ptr(index)
			}
			if transactions {
				params.Transactions = ptr(true)
			}
			if expand {
				params.Expand = ptr(true)
			}
			if queue {
				params.Queue = ptr(true)
			}
			ledger, err := a.rpc.Ledger(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(cmd, ledger)
		},
	}
	cmd.Flags().StringVar(&hash, "hash", "", "ledger hash to query")
	cmd.Flags().StringVar(&index, "index", "", "ledger index to query: validated, closed, current or a sequence number")
	cmd.Flags().BoolVar(&transactions, "transactions", false, "include the transaction set")
	cmd.Flags().BoolVar(&expand, "expand", false, "expand transactions instead of listing hashes")
	cmd.Flags().BoolVar(&queue, "queue", false, "include the queue summary")
	return cmd
}

func newLedgerCurrentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ledger-current",
		Short: "Show the in-progress ledger's sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, err := a.rpc.LedgerCurrent(cmd.Context())
			if err != nil {
				return err
			}
			seq, _ := idx.Current()
			cmd.Println(seq.String())
			return nil
		},
	}
}

func newTxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tx <hash>",
		Short: "Look up a transaction by hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := a.rpc.Tx(cmd.Context(), types.TxParams{Transaction: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd, tx)
		},
	}
}

func newServerInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "server-info",
		Short: "Show the node's state and validated-ledger summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := a.rpc.ServerInfo(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, info)
		},
	}
}
