package client

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
)

// RetryTransport retries transient failures of the transport it wraps, with
// exponential backoff. Remote and decode errors never reach this layer, so
// only transport failures are ever retried. Opt in by wrapping:
//
//	client.New(url, client.WithTransport(
//		client.NewRetryTransport(client.NewHTTPTransport(url), 3, time.Second)))
type RetryTransport struct {
	next     Transport
	attempts uint
	delay    time.Duration
}

func NewRetryTransport(next Transport, attempts uint, delay time.Duration) *RetryTransport {
	return &RetryTransport{next: next, attempts: attempts, delay: delay}
}

func (t *RetryTransport) RoundTrip(ctx context.Context, body []byte) ([]byte, error) {
	return retry.DoWithData(
		func() ([]byte, error) { return t.next.RoundTrip(ctx, body) },
		retry.Context(ctx),
		retry.Attempts(t.attempts),
		retry.Delay(t.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}
