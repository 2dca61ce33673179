package client

import "fmt"

// TransportError wraps a failure to exchange bytes with the node:
// connection refused, timeout, non-2xx status, malformed response body.
// These are the only errors worth retrying.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport: %v", e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError is an application-level error reported by the node, carried
// either in the JSON-RPC error member or in a result body with status
// "error". Usually not retryable without changing the request.
type RemoteError struct {
	// Name is the rippled error token, e.g. "actNotFound". Empty when the
	// error came through the JSON-RPC error member.
	Name    string
	Code    int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("rpc error %s (code %d): %s", e.Name, e.Code, e.Message)
	}
	return fmt.Sprintf("rpc error code %d: %s", e.Code, e.Message)
}

// DecodeError reports a result payload that did not match the expected
// response shape. It is never transient: it means protocol drift or an
// incomplete type definition. The wrapped error names the offending field
// where the decoder can tell.
type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s result: %v", e.Method, e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }
