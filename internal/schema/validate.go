package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator builds a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors aggregates per-field failures into one error value.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	var sb strings.Builder
	for i, err := range e {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Validate checks a parsed response against the field layout. It reports
// missing required fields and type mismatches; it does not enforce
// cardinality bounds or the audience enumeration, which are prompt-level
// guidance only.
func Validate(data map[string]any) []ValidationError {
	var errs []ValidationError

	for _, field := range fields {
		val, exists := data[field.Name]
		if !exists {
			if field.Required {
				errs = append(errs, ValidationError{
					Field:   field.Name,
					Message: "required field is missing",
				})
			}
			continue
		}

		if err := checkFieldType(field, val); err != nil {
			errs = append(errs, ValidationError{
				Field:   field.Name,
				Message: err.Error(),
				Value:   val,
			})
		}
	}

	return errs
}

// checkFieldType checks if a value matches the expected field type.
func checkFieldType(field Field, val any) error {
	if val == nil {
		if field.Required {
			return fmt.Errorf("value is null but field is required")
		}
		return nil
	}

	switch field.Type {
	case TypeString:
		if _, ok := val.(string); !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
	case TypeStringArray:
		arr, ok := val.([]any)
		if !ok {
			return fmt.Errorf("expected array of strings, got %T", val)
		}
		for i, item := range arr {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("item %d: expected string, got %T", i, item)
			}
		}
	}

	return nil
}

// Decode validates a parsed response and constructs the metadata record.
// content_warnings defaults to an empty list when absent.
func Decode(data map[string]any) (*ContentMetadata, error) {
	if errs := Validate(data); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode response: %w", err)
	}

	var m ContentMetadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}

	if m.ContentWarnings == nil {
		m.ContentWarnings = []string{}
	}

	// Final gate: the slice fields must have survived decoding non-nil.
	if err := validate.Struct(&m); err != nil {
		var errs ValidationErrors
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, ValidationError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed validation '%s'", fe.Tag()),
				Value:   fe.Value(),
			})
		}
		return nil, errs
	}

	return &m, nil
}
