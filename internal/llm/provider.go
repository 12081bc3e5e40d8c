// Package llm provides the model-call interface used by the extraction
// pipeline. Anthropic is the only backend; the interface exists so the
// extractor can be exercised against scripted fakes in tests.
package llm

import (
	"context"
	"time"
)

// CompletionRequest represents a single prompt sent to the model.
type CompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// CompletionResponse represents the model response.
type CompletionResponse struct {
	Content      string
	FinishReason string
	Usage        Usage
}

// Provider is the abstraction over the model backend.
type Provider interface {
	// Complete sends a prompt and returns the response text.
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)

	// Name returns the provider identifier.
	Name() string
}

// ProviderConfig holds provider configuration. The API key is passed in
// explicitly; providers never read it from the environment themselves.
type ProviderConfig struct {
	APIKey     string
	Model      string
	MaxRetries int
	Timeout    time.Duration
}
