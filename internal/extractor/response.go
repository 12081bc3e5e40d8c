package extractor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError indicates that a model response was not valid JSON after
// cleanup. It carries the syntax error and the cleaned text so both can be
// echoed back to the model on retry.
type ParseError struct {
	Detail  error
	Cleaned string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON response: %v (response: %s)", e.Detail, truncateForError(e.Cleaned))
}

func (e *ParseError) Unwrap() error {
	return e.Detail
}

// CleanResponse strips markdown code fences and surrounding whitespace from
// a raw model response. Fences are removed wherever they appear, not only at
// the boundaries; the model sometimes wraps output unpredictably.
func CleanResponse(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// ParseResponse cleans a raw model response and parses it as a JSON object.
func ParseResponse(raw string) (map[string]any, error) {
	cleaned := CleanResponse(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, &ParseError{Detail: err, Cleaned: cleaned}
	}
	return data, nil
}

// truncateForError limits response text quoted in error messages.
func truncateForError(s string) string {
	if len(s) <= 200 {
		return s
	}
	return s[:200] + "..."
}
