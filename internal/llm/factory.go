package llm

import (
	"fmt"
	"strings"
)

// NewClient creates an LLM client for the configured provider, rate limited to
// cfg.RateLimit requests per minute.
func NewClient(cfg Config) (Client, error) {
	var (
		client Client
		err    error
	)

	switch strings.ToLower(cfg.Provider) {
	case "openai":
		client, err = newOpenAIClient(cfg)
	case "gemini", "":
		client, err = newGeminiClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return newRateLimitedClient(client, cfg.RateLimit), nil
}
