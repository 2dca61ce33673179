package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/strangelove-ventures/xrplclient/client"
	"github.com/strangelove-ventures/xrplclient/types"
)

type config struct {
	URL        string `toml:"url"`
	Timeout    string `toml:"timeout"`
	Retries    uint   `toml:"retries"`
	RetryDelay string `toml:"retry_delay"`
}

func defaultConfig() config {
	return config{
		URL:        "http://localhost:5005",
		Timeout:    "30s",
		RetryDelay: "1s",
	}
}

func loadConfig(path string) (_ config, err error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()
	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

type app struct {
	cfg config
	log *zap.Logger
	rpc *client.Client
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		configPath string
		debug      bool
	)

	rootCmd := &cobra.Command{
		Use:           "xrpcli",
		Short:         "Query a rippled node over JSON-RPC",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("url") {
				cfg.URL, _ = cmd.Flags().GetString("url")
			}
			if cmd.Flags().Changed("retries") {
				cfg.Retries, _ = cmd.Flags().GetUint("retries")
			}
			a.cfg = cfg

			a.log = zap.NewNop()
			if debug {
				a.log, err = zap.NewDevelopment()
				if err != nil {
					return err
				}
			}

			transport, err := newTransport(cfg)
			if err != nil {
				return err
			}
			a.rpc = client.New(cfg.URL,
				client.WithTransport(transport),
				client.WithLogger(a.log),
			)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	rootCmd.PersistentFlags().String("url", defaultConfig().URL, "rippled JSON-RPC endpoint")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file")
	rootCmd.PersistentFlags().Uint("retries", 0, "retry transient transport failures this many times")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newAccountInfoCmd(a),
		newAccountTxCmd(a),
		newLedgerCmd(a),
		newLedgerCurrentCmd(a),
		newTxCmd(a),
		newServerInfoCmd(a),
	)
	return rootCmd
}

func newTransport(cfg config) (client.Transport, error) {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("timeout: %w", err)
	}
	var transport client.Transport = client.NewHTTPTransportWithClient(cfg.URL, &http.Client{Timeout: timeout})
	if cfg.Retries > 0 {
		delay, err := time.ParseDuration(cfg.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("retry_delay: %w", err)
		}
		// retry-go counts attempts, not retries
		transport = client.NewRetryTransport(transport, cfg.Retries+1, delay)
	}
	return transport, nil
}

// parseLedgerIndex turns a --ledger flag value into the matching selector:
// digits become an explicit sequence number, anything else is a shortcut
// like "validated" or "closed".
func parseLedgerIndex(s string) types.LedgerIndex {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return types.NumericLedgerIndex(n)
	}
	return types.NamedLedgerIndex(s)
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}

func ptr[T any](v T) *T { return &v }
