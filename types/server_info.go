package types

import (
	"github.com/shopspring/decimal"
)

// ServerInfo is the server_info result. Fee and reserve figures are decimal:
// the node emits them as fractional XRP.
type ServerInfo struct {
	Info struct {
		BuildVersion    string `json:"build_version"`
		CompleteLedgers string `json:"complete_ledgers"`
		HostID          string `json:"hostid"`
		IoLatencyMs     int    `json:"io_latency_ms"`
		JqTransOverflow string `json:"jq_trans_overflow"`
		LastClose       struct {
			ConvergeTimeS decimal.Decimal `json:"converge_time_s"`
			Proposers     int             `json:"proposers"`
		} `json:"last_close"`
		Load *struct {
			JobTypes []struct {
				InProgress int    `json:"in_progress"`
				JobType    string `json:"job_type"`
			} `json:"job_types"`
			Threads int `json:"threads"`
		} `json:"load,omitempty"`
		LoadFactor      decimal.Decimal `json:"load_factor"`
		NetworkID       *int            `json:"network_id,omitempty"`
		PeerDisconnects string          `json:"peer_disconnects,omitempty"`
		Peers           int             `json:"peers"`
		PubkeyNode      string          `json:"pubkey_node"`
		PubkeyValidator string          `json:"pubkey_validator"`
		ServerState     string          `json:"server_state"`
		StateAccounting map[string]struct {
			DurationUs  string `json:"duration_us"`
			Transitions string `json:"transitions"`
		} `json:"state_accounting"`
		Time            string `json:"time"`
		Uptime          int64  `json:"uptime"`
		ValidatedLedger *struct {
			Age            int             `json:"age"`
			BaseFeeXrp     decimal.Decimal `json:"base_fee_xrp"`
			Hash           string          `json:"hash"`
			ReserveBaseXrp decimal.Decimal `json:"reserve_base_xrp"`
			ReserveIncXrp  decimal.Decimal `json:"reserve_inc_xrp"`
			Seq            int64           `json:"seq"`
		} `json:"validated_ledger,omitempty"`
		ValidationQuorum int `json:"validation_quorum"`
	} `json:"info"`
	Status string `json:"status"`
}
