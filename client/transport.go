package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultHTTPTimeout = 30 * time.Second

// Transport exchanges one serialized JSON-RPC request body for one response
// body. Implementations own connection state, timeouts and cancellation and
// must be safe for concurrent use.
type Transport interface {
	RoundTrip(ctx context.Context, body []byte) ([]byte, error)
}

// HTTPTransport POSTs requests to a rippled JSON-RPC endpoint.
type HTTPTransport struct {
	url    string
	client *http.Client
}

func NewHTTPTransport(url string) *HTTPTransport {
	return NewHTTPTransportWithClient(url, &http.Client{Timeout: defaultHTTPTimeout})
}

func NewHTTPTransportWithClient(url string, httpClient *http.Client) *HTTPTransport {
	return &HTTPTransport{url: url, client: httpClient}
}

func (t *HTTPTransport) RoundTrip(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected HTTP status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}
	return out, nil
}
