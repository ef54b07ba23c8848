package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	reply string
	err   error
	calls int
}

func (s *stubClient) Complete(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestRateLimitedClient(t *testing.T) {
	t.Run("allows a burst up to the per-minute limit", func(t *testing.T) {
		stub := &stubClient{reply: "{}"}
		client := newRateLimitedClient(stub, 5)

		for i := 0; i < 5; i++ {
			got, err := client.Complete(context.Background(), "q")
			require.NoError(t, err)
			assert.Equal(t, "{}", got)
		}
		assert.Equal(t, 5, stub.calls)
	})

	t.Run("gives up when the context ends first", func(t *testing.T) {
		stub := &stubClient{reply: "{}"}
		client := newRateLimitedClient(stub, 1)

		_, err := client.Complete(context.Background(), "q")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err = client.Complete(ctx, "q")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limiter canceled")
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("defaults non-positive limits", func(t *testing.T) {
		client := newRateLimitedClient(&stubClient{}, 0)
		assert.Equal(t, defaultRequestsPerMinute, client.limiter.Burst())
	})
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		wantErr  bool
	}{
		{name: "openai", provider: "openai"},
		{name: "gemini", provider: "Gemini"},
		{name: "empty defaults to gemini", provider: ""},
		{name: "unknown provider", provider: "anthropic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(Config{Provider: tt.provider, APIKey: "k"})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported LLM provider")
				return
			}
			require.NoError(t, err)
			assert.IsType(t, &rateLimitedClient{}, client)
		})
	}
}
