package llm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

const defaultRequestsPerMinute = 60

// rateLimitedClient delays calls to the wrapped client so at most
// requestsPerMinute completions start per minute, with bursts up to the same size.
type rateLimitedClient struct {
	client  Client
	limiter *rate.Limiter
}

func newRateLimitedClient(client Client, requestsPerMinute int) *rateLimitedClient {
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}

	return &rateLimitedClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), requestsPerMinute),
	}
}

// Complete waits for a token and then forwards to the wrapped client.
func (c *rateLimitedClient) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter canceled: %w", err)
	}
	return c.client.Complete(ctx, prompt)
}
