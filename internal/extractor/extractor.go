package extractor

import (
	"context"
	"fmt"

	"github.com/screenmeta/screenmeta/internal/llm"
	"github.com/screenmeta/screenmeta/internal/logger"
	"github.com/screenmeta/screenmeta/internal/schema"
)

// Result is the envelope returned per input item. All failure is captured
// here; Extract never returns an error to the caller.
type Result struct {
	Title       string                  `json:"title,omitempty"`
	Description string                  `json:"description,omitempty"`
	Metadata    *schema.ContentMetadata `json:"metadata,omitempty"`
	RawResponse string                  `json:"raw_response,omitempty"`
	Retries     int                     `json:"retries"`
	Success     bool                    `json:"success"`
	Error       string                  `json:"error,omitempty"`
}

// Item is one batch input.
type Item struct {
	Title       string
	Description string
}

// Config holds extractor settings.
type Config struct {
	MaxRetries  int
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns the standard settings: two extra attempts beyond the
// first, deterministic decoding, and a 500-token output cap.
func DefaultConfig() Config {
	return Config{
		MaxRetries:  2,
		Temperature: 0,
		MaxTokens:   500,
	}
}

// Option configures the extractor.
type Option func(*Config)

// WithMaxRetries sets the number of extra attempts after the first.
func WithMaxRetries(n int) Option {
	return func(c *Config) {
		c.MaxRetries = n
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(c *Config) {
		c.Temperature = t
	}
}

// WithMaxTokens sets the response token cap.
func WithMaxTokens(n int) Option {
	return func(c *Config) {
		c.MaxTokens = n
	}
}

// Extractor runs LLM-based metadata extraction.
type Extractor struct {
	provider   llm.Provider
	schemaDesc string
	cfg        Config
}

// New creates an Extractor. The schema description is rendered once by the
// caller and passed in explicitly.
func New(provider llm.Provider, schemaDescription string, opts ...Option) *Extractor {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Extractor{
		provider:   provider,
		schemaDesc: schemaDescription,
		cfg:        cfg,
	}
}

// Extract runs the call-parse-validate cycle for one description with
// bounded retry. Model-call failures count against the retry budget the same
// way parse and validation failures do.
func (e *Extractor) Extract(ctx context.Context, description string) Result {
	logger.Debug("extraction starting",
		"provider", e.provider.Name(),
		"max_retries", e.cfg.MaxRetries,
		"description_size", len(description))

	prompt := BuildExtractionPrompt(description, e.schemaDesc)

	var lastErr error
	var lastRaw string

	for attempt := 0; attempt <= e.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			prompt = BuildRetryPrompt(lastErr.Error(), description)
		}

		logger.Debug("extraction attempt",
			"attempt", attempt+1,
			"max_attempts", e.cfg.MaxRetries+1)

		resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
			Prompt:      prompt,
			MaxTokens:   e.cfg.MaxTokens,
			Temperature: e.cfg.Temperature,
		})
		if err != nil {
			lastErr = fmt.Errorf("model call failed: %w", err)
			logger.Warn("attempt failed", "attempt", attempt+1, "error", lastErr)
			continue
		}
		lastRaw = resp.Content

		data, err := ParseResponse(resp.Content)
		if err != nil {
			lastErr = err
			logger.Warn("attempt failed", "attempt", attempt+1, "error", err)
			continue
		}

		metadata, err := schema.Decode(data)
		if err != nil {
			lastErr = err
			logger.Warn("attempt failed", "attempt", attempt+1, "error", err)
			continue
		}

		logger.Debug("extraction succeeded", "attempt", attempt+1, "retries", attempt)
		return Result{
			Metadata:    metadata,
			RawResponse: resp.Content,
			Retries:     attempt,
			Success:     true,
		}
	}

	logger.Debug("extraction exhausted retries",
		"attempts", e.cfg.MaxRetries+1,
		"error", lastErr)
	return Result{
		RawResponse: lastRaw,
		Retries:     e.cfg.MaxRetries,
		Success:     false,
		Error:       lastErr.Error(),
	}
}

// ExtractBatch applies Extract to an ordered sequence of items, strictly
// sequentially. One result is produced per item in input order; a failed
// item never aborts the batch. Cancelling the context stops the batch
// between items.
func (e *Extractor) ExtractBatch(ctx context.Context, items []Item) []Result {
	results := make([]Result, 0, len(items))

	for i, item := range items {
		if ctx.Err() != nil {
			logger.Warn("batch cancelled", "completed", i, "total", len(items))
			break
		}

		title := item.Title
		if title == "" {
			title = fmt.Sprintf("Item %d", i+1)
		}

		logger.Info("extracting", "item", i+1, "total", len(items), "title", title)

		result := e.Extract(ctx, item.Description)
		result.Title = title
		result.Description = item.Description
		results = append(results, result)

		if result.Success {
			logger.Info("extraction complete", "title", title, "retries", result.Retries)
		} else {
			logger.Error("extraction failed", "title", title, "error", result.Error)
		}
	}

	return results
}
