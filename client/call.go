package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Single-request JSON-RPC envelope: one method, an array holding one
// parameter object, a request id.
type rpcRequest struct {
	Method string `json:"method"`
	Params []any  `json:"params,omitempty"`
	ID     int64  `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
	ID int64 `json:"id"`
}

// Call issues one JSON-RPC request and decodes the result field into R.
// A nil params pointer sends no parameter object at all. Errors come back
// as *TransportError, *RemoteError or *DecodeError; a decode failure never
// yields a partially populated result. A params value that cannot be
// marshalled (say, a zero-value ledger selector) is a programmer error and
// returns a plain error before anything reaches the transport.
func Call[P any, R any](ctx context.Context, c *Client, method string, params *P) (*R, error) {
	req := rpcRequest{Method: method, ID: c.nextID.Add(1)}
	if params != nil {
		req.Params = []any{params}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", method, err)
	}

	c.log.Debug("rpc request", zap.String("method", method), zap.Int64("id", req.ID))
	reply, err := c.transport.RoundTrip(ctx, body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var resp rpcResponse
	if err := json.Unmarshal(reply, &resp); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("malformed response body: %w", err)}
	}
	if resp.Error != nil {
		return nil, &RemoteError{Code: resp.Error.Code, Message: resp.Error.Message}
	}
	if remoteErr := remoteResultError(resp.Result); remoteErr != nil {
		return nil, remoteErr
	}

	var result R
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		return nil, &DecodeError{Method: method, Err: err}
	}
	return &result, nil
}

// rippled reports request-level failures inside the result object with
// status "error" rather than in the JSON-RPC error member.
func remoteResultError(result json.RawMessage) *RemoteError {
	if gjson.GetBytes(result, "status").String() != "error" {
		return nil
	}
	return &RemoteError{
		Name:    gjson.GetBytes(result, "error").String(),
		Code:    int(gjson.GetBytes(result, "error_code").Int()),
		Message: gjson.GetBytes(result, "error_message").String(),
	}
}
