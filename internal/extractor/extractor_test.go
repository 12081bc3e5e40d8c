package extractor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/screenmeta/screenmeta/internal/llm"
	"github.com/screenmeta/screenmeta/internal/schema"
)

// scriptedProvider returns canned responses in order, repeating the last one
// once the script is exhausted.
type scriptedProvider struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (p *scriptedProvider) Complete(_ context.Context, req llm.CompletionRequest) (llm.CompletionResponse, error) {
	i := p.calls
	p.calls++
	p.prompts = append(p.prompts, req.Prompt)

	if i < len(p.errs) && p.errs[i] != nil {
		return llm.CompletionResponse{}, p.errs[i]
	}
	if i >= len(p.responses) {
		i = len(p.responses) - 1
	}
	return llm.CompletionResponse{Content: p.responses[i]}, nil
}

func (p *scriptedProvider) Name() string { return "scripted" }

const goodResponse = `{"genres": ["Comedy"], "themes": ["love"], "mood": "lighthearted", "target_audience": "teens", "content_warnings": []}`

func newTestExtractor(p llm.Provider, opts ...Option) *Extractor {
	return New(p, schema.PromptDescription(), opts...)
}

func TestExtract_SuccessFirstAttempt(t *testing.T) {
	p := &scriptedProvider{responses: []string{goodResponse}}
	e := newTestExtractor(p)

	result := e.Extract(context.Background(), "A fun romantic comedy")

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.Retries != 0 {
		t.Errorf("expected retries=0, got %d", result.Retries)
	}
	if result.Metadata == nil || result.Metadata.Mood != "lighthearted" {
		t.Errorf("unexpected metadata: %+v", result.Metadata)
	}
	if result.RawResponse != goodResponse {
		t.Errorf("expected raw response carried through")
	}
}

func TestExtract_RetryOnInvalidJSON(t *testing.T) {
	p := &scriptedProvider{responses: []string{"Not valid JSON", goodResponse}}
	e := newTestExtractor(p)

	result := e.Extract(context.Background(), "A fun romantic comedy")

	if !result.Success {
		t.Fatalf("expected success after retry, got error %q", result.Error)
	}
	if result.Retries != 1 {
		t.Errorf("expected retries=1, got %d", result.Retries)
	}
	if p.calls != 2 {
		t.Errorf("expected 2 model calls, got %d", p.calls)
	}
}

func TestExtract_RetryOnValidationFailure(t *testing.T) {
	missingMood := `{"genres": ["Drama"], "themes": ["loss"], "target_audience": "adults"}`
	p := &scriptedProvider{responses: []string{missingMood, goodResponse}}
	e := newTestExtractor(p)

	result := e.Extract(context.Background(), "A sad drama")

	if !result.Success {
		t.Fatalf("expected success after retry, got error %q", result.Error)
	}
	if result.Retries != 1 {
		t.Errorf("expected retries=1, got %d", result.Retries)
	}
}

func TestExtract_AllAttemptsFail(t *testing.T) {
	p := &scriptedProvider{responses: []string{"Not JSON"}}
	e := newTestExtractor(p)

	result := e.Extract(context.Background(), "Test description")

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Retries != 2 {
		t.Errorf("expected retries=2, got %d", result.Retries)
	}
	if result.Error == "" {
		t.Error("expected a non-empty error message")
	}
	if p.calls != 3 {
		t.Errorf("expected 3 attempts, got %d", p.calls)
	}
	if result.RawResponse != "Not JSON" {
		t.Errorf("expected last raw response kept, got %q", result.RawResponse)
	}
}

func TestExtract_RetryUsesCorrectiveTemplate(t *testing.T) {
	p := &scriptedProvider{responses: []string{"Not JSON", goodResponse}}
	e := newTestExtractor(p)

	e.Extract(context.Background(), "A fun romantic comedy")

	if len(p.prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(p.prompts))
	}
	if !strings.Contains(p.prompts[0], "EXAMPLE:") {
		t.Error("first attempt should use the extraction template")
	}
	if strings.Contains(p.prompts[1], "EXAMPLE:") {
		t.Error("retry should not reuse the extraction template")
	}
	if !strings.Contains(p.prompts[1], "previous response was not valid JSON") {
		t.Error("retry prompt should reference the prior failure")
	}
	if !strings.Contains(p.prompts[1], "invalid JSON response") {
		t.Error("retry prompt should include the captured error message")
	}
}

func TestExtract_ServiceErrorsCountAgainstBudget(t *testing.T) {
	p := &scriptedProvider{
		responses: []string{"", goodResponse},
		errs:      []error{errors.New("rate limited"), nil},
	}
	e := newTestExtractor(p)

	result := e.Extract(context.Background(), "Test description")

	if !result.Success {
		t.Fatalf("expected recovery from service error, got %q", result.Error)
	}
	if result.Retries != 1 {
		t.Errorf("expected retries=1, got %d", result.Retries)
	}
}

func TestExtract_AllCallsFail_NoRawResponse(t *testing.T) {
	err := errors.New("connection refused")
	p := &scriptedProvider{
		responses: []string{""},
		errs:      []error{err, err, err},
	}
	e := newTestExtractor(p)

	result := e.Extract(context.Background(), "Test description")

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.RawResponse != "" {
		t.Errorf("raw response should be absent when no call returned text, got %q", result.RawResponse)
	}
	if !strings.Contains(result.Error, "connection refused") {
		t.Errorf("expected service error surfaced, got %q", result.Error)
	}
}

func TestExtract_EndToEndBlackjackScenario(t *testing.T) {
	response := `{"genres": ["Drama","Thriller","Crime"],"themes":["ambition","deception","risk"],"mood":"thrilling","target_audience":"adults","content_warnings":["gambling"]}`
	p := &scriptedProvider{responses: []string{response}}
	e := newTestExtractor(p)

	description := "A brilliant group of students become card-counting experts with the intent of swindling millions out of Las Vegas casinos by playing blackjack."
	result := e.Extract(context.Background(), description)

	if !result.Success {
		t.Fatalf("expected success, got %q", result.Error)
	}
	if result.Retries != 0 {
		t.Errorf("expected retries=0, got %d", result.Retries)
	}
	if result.Metadata.Mood != "thrilling" {
		t.Errorf("expected mood 'thrilling', got %q", result.Metadata.Mood)
	}
}

func TestExtract_RequestSettings(t *testing.T) {
	var got llm.CompletionRequest
	p := &captureProvider{response: goodResponse, capture: &got}
	e := newTestExtractor(p)

	e.Extract(context.Background(), "Test description")

	if got.MaxTokens != 500 {
		t.Errorf("expected max tokens 500, got %d", got.MaxTokens)
	}
	if got.Temperature != 0 {
		t.Errorf("expected temperature 0, got %v", got.Temperature)
	}
}

type captureProvider struct {
	response string
	capture  *llm.CompletionRequest
}

func (p *captureProvider) Complete(_ context.Context, req llm.CompletionRequest) (llm.CompletionResponse, error) {
	*p.capture = req
	return llm.CompletionResponse{Content: p.response}, nil
}

func (p *captureProvider) Name() string { return "capture" }

func TestExtractBatch_OrderAndIsolation(t *testing.T) {
	p := &batchProvider{byDescription: map[string]string{
		"good one": goodResponse,
		"bad one":  "garbage",
		"good two": goodResponse,
	}}
	e := newTestExtractor(p)

	items := []Item{
		{Title: "First", Description: "good one"},
		{Title: "Second", Description: "bad one"},
		{Title: "Third", Description: "good two"},
	}
	results := e.ExtractBatch(context.Background(), items)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Title != "First" || !results[0].Success {
		t.Errorf("unexpected first result: %+v", results[0])
	}
	if results[1].Success {
		t.Error("second item should fail")
	}
	if !results[2].Success {
		t.Error("third item should succeed despite the second failing")
	}
	if results[2].Description != "good two" {
		t.Errorf("description not carried through: %q", results[2].Description)
	}
}

func TestExtractBatch_DefaultTitle(t *testing.T) {
	p := &scriptedProvider{responses: []string{goodResponse}}
	e := newTestExtractor(p)

	results := e.ExtractBatch(context.Background(), []Item{{Description: "untitled"}})

	if results[0].Title != "Item 1" {
		t.Errorf("expected default title 'Item 1', got %q", results[0].Title)
	}
}

func TestExtractBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &scriptedProvider{responses: []string{goodResponse}}
	e := newTestExtractor(p)

	results := e.ExtractBatch(ctx, []Item{{Title: "A", Description: "x"}})
	if len(results) != 0 {
		t.Errorf("expected no results after cancellation, got %d", len(results))
	}
}

// batchProvider keys responses off the description embedded in the prompt.
type batchProvider struct {
	byDescription map[string]string
}

func (p *batchProvider) Complete(_ context.Context, req llm.CompletionRequest) (llm.CompletionResponse, error) {
	for desc, resp := range p.byDescription {
		if strings.Contains(req.Prompt, desc) {
			return llm.CompletionResponse{Content: resp}, nil
		}
	}
	return llm.CompletionResponse{Content: "garbage"}, nil
}

func (p *batchProvider) Name() string { return "batch" }
