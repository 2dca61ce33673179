// Package client issues single (non-batched) JSON-RPC calls against a
// rippled node and decodes strongly-typed results. The network exchange
// itself lives behind the Transport interface; everything on this side is
// stateless between calls.
package client

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Method names of the supported rippled JSON-RPC calls.
const (
	MethodAccountInfo   = "account_info"
	MethodAccountTx     = "account_tx"
	MethodLedger        = "ledger"
	MethodLedgerCurrent = "ledger_current"
	MethodTx            = "tx"
	MethodServerInfo    = "server_info"
)

// Client is safe for concurrent use as long as its Transport is; the only
// mutable state on this side is the request id counter.
type Client struct {
	transport Transport
	log       *zap.Logger
	nextID    atomic.Int64
}

type Option func(*Client)

// WithLogger attaches a logger for debug-level request/response logging.
// Errors are still returned to the caller, never merely logged.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTransport replaces the default HTTP transport.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// New returns a client POSTing to the given rippled JSON-RPC endpoint.
func New(url string, opts ...Option) *Client {
	c := &Client{
		transport: NewHTTPTransport(url),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
