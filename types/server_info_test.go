package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestServerInfoDecode(t *testing.T) {
	fixture := `{
		"info": {
			"build_version": "2.2.0",
			"complete_ledgers": "32570-54300932",
			"hostid": "TILT",
			"io_latency_ms": 1,
			"jq_trans_overflow": "0",
			"last_close": {"converge_time_s": 2.001, "proposers": 34},
			"load_factor": 1,
			"peers": 21,
			"pubkey_node": "n9KKBZvwPZ95rQi4BP2an1MP6Yjl8QEnhq9NaAzTmeQJAf6HTLvf",
			"pubkey_validator": "none",
			"server_state": "full",
			"state_accounting": {
				"full": {"duration_us": "3755635018", "transitions": "1"},
				"syncing": {"duration_us": "5469385", "transitions": "1"}
			},
			"time": "2020-Mar-24 01:41:13.000000000 UTC",
			"uptime": 3761,
			"validated_ledger": {
				"age": 2,
				"base_fee_xrp": 0.00001,
				"hash": "3652D7FD0576BC452C0D2E9B747BDD733075971D1A9A1D98125055DEF428721A",
				"reserve_base_xrp": 20,
				"reserve_inc_xrp": 5,
				"seq": 54300932
			},
			"validation_quorum": 26
		},
		"status": "success"
	}`

	var info ServerInfo
	require.NoError(t, json.Unmarshal([]byte(fixture), &info))

	require.Equal(t, "2.2.0", info.Info.BuildVersion)
	require.Equal(t, "full", info.Info.ServerState)
	require.Equal(t, "1", info.Info.StateAccounting["full"].Transitions)

	vl := info.Info.ValidatedLedger
	require.NotNil(t, vl)
	// fee figures decode as exact decimals, not floats
	require.True(t, vl.BaseFeeXrp.Equal(decimal.RequireFromString("0.00001")))
	require.True(t, vl.ReserveBaseXrp.Equal(decimal.NewFromInt(20)))
	require.Equal(t, int64(54300932), vl.Seq)
	require.Nil(t, info.Info.Load)
}
