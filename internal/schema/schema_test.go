package schema

import (
	"reflect"
	"strings"
	"testing"
)

func validPayload() map[string]any {
	return map[string]any{
		"genres":           []any{"Drama", "Thriller"},
		"themes":           []any{"survival"},
		"mood":             "dark",
		"target_audience":  "adults",
		"content_warnings": []any{"violence"},
	}
}

func TestDecode_ValidPayload(t *testing.T) {
	m, err := Decode(validPayload())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !reflect.DeepEqual(m.Genres, []string{"Drama", "Thriller"}) {
		t.Errorf("expected genres [Drama Thriller], got %v", m.Genres)
	}
	if m.Mood != "dark" {
		t.Errorf("expected mood 'dark', got %q", m.Mood)
	}
	if m.TargetAudience != "adults" {
		t.Errorf("expected target_audience 'adults', got %q", m.TargetAudience)
	}
	if !reflect.DeepEqual(m.ContentWarnings, []string{"violence"}) {
		t.Errorf("expected warnings [violence], got %v", m.ContentWarnings)
	}
}

func TestDecode_ContentWarningsDefault(t *testing.T) {
	data := validPayload()
	delete(data, "content_warnings")

	m, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if m.ContentWarnings == nil || len(m.ContentWarnings) != 0 {
		t.Errorf("expected empty content_warnings, got %v", m.ContentWarnings)
	}
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	for _, name := range []string{"genres", "themes", "mood", "target_audience"} {
		data := validPayload()
		delete(data, name)

		errs := Validate(data)
		if len(errs) != 1 {
			t.Fatalf("missing %s: expected 1 error, got %d", name, len(errs))
		}
		if errs[0].Field != name {
			t.Errorf("expected error on %q, got %q", name, errs[0].Field)
		}
		if !strings.Contains(errs[0].Message, "missing") {
			t.Errorf("expected 'missing' in message, got %q", errs[0].Message)
		}
	}
}

func TestValidate_OptionalFieldMayBeAbsent(t *testing.T) {
	data := validPayload()
	delete(data, "content_warnings")

	if errs := Validate(data); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidate_WrongTypes(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{"genres as string", "genres", "Drama"},
		{"themes as number", "themes", 42.0},
		{"mood as array", "mood", []any{"dark"}},
		{"target_audience as bool", "target_audience", true},
		{"content_warnings as string", "content_warnings", "violence"},
		{"genres with non-string item", "genres", []any{"Drama", 7.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validPayload()
			data[tt.field] = tt.value

			errs := Validate(data)
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d (%v)", len(errs), errs)
			}
			if errs[0].Field != tt.field {
				t.Errorf("expected error on %q, got %q", tt.field, errs[0].Field)
			}
		})
	}
}

func TestValidate_NullRequiredField(t *testing.T) {
	data := validPayload()
	data["mood"] = nil

	errs := Validate(data)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if errs[0].Field != "mood" {
		t.Errorf("expected error on mood, got %q", errs[0].Field)
	}
}

func TestDecode_EmptyStringsAccepted(t *testing.T) {
	data := validPayload()
	data["mood"] = ""
	data["target_audience"] = ""

	m, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode rejected empty string fields: %v", err)
	}
	if m.Mood != "" {
		t.Errorf("expected mood preserved as empty, got %q", m.Mood)
	}
	if m.TargetAudience != "" {
		t.Errorf("expected target_audience preserved as empty, got %q", m.TargetAudience)
	}
}

func TestValidationErrors_MessageNamesFields(t *testing.T) {
	errs := ValidationErrors{
		{Field: "genres", Message: "required field is missing"},
		{Field: "mood", Message: "expected string, got float64"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "genres") || !strings.Contains(msg, "mood") {
		t.Errorf("expected both field names in %q", msg)
	}
}

func TestPromptDescription_ListsAllFields(t *testing.T) {
	desc := PromptDescription()

	if !strings.HasPrefix(desc, "Required JSON schema:") {
		t.Errorf("unexpected prefix in %q", desc[:40])
	}
	for _, f := range Fields() {
		if !strings.Contains(desc, f.Name) {
			t.Errorf("prompt description missing field %q", f.Name)
		}
	}
}

func TestJSONSchema_RequiredFields(t *testing.T) {
	js := JSONSchema()

	required, ok := js["required"].([]string)
	if !ok {
		t.Fatalf("expected required list, got %T", js["required"])
	}

	want := []string{"genres", "themes", "mood", "target_audience"}
	if !reflect.DeepEqual(required, want) {
		t.Errorf("expected required %v, got %v", want, required)
	}
}
