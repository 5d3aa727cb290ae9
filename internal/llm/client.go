// Package llm provides completion client interfaces and implementations.
package llm

import (
	"context"
	"fmt"
)

// CompletionRequest carries the composed prompt text. The pipeline produces
// one flat prompt, so providers receive a single string rather than a
// message list.
type CompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// CompletionResponse is a provider-neutral completion result.
type CompletionResponse struct {
	Content    string
	Provider   string
	TokensIn   int
	TokensOut  int
	StopReason string
	LatencyMs  int64
}

// Client is the interface for completion providers.
type Client interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Name returns the provider name.
	Name() string
}

// Provider is the type of completion provider.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// Config carries provider credentials and model selection.
type Config struct {
	GeminiAPIKey    string
	GeminiModel     string
	OpenAIAPIKey    string
	AnthropicAPIKey string
}

// NewClient creates a completion client for the configured provider.
func NewClient(ctx context.Context, provider Provider, cfg Config) (Client, error) {
	switch provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey)
	case ProviderAnthropic:
		return NewAnthropicClient(cfg.AnthropicAPIKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", provider)
	}
}
