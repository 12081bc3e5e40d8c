// Package schema defines the content metadata record and its statically
// declared field layout used for prompting and validation.
package schema

import "encoding/json"

// ContentMetadata is the validated output of one extraction. It is
// constructed once per successful attempt and never mutated afterward.
// Presence of the string fields is enforced at the map level by Validate;
// an empty string is a legal value, so they carry no required tag.
type ContentMetadata struct {
	Genres          []string `json:"genres" validate:"required"`
	Themes          []string `json:"themes" validate:"required"`
	Mood            string   `json:"mood"`
	TargetAudience  string   `json:"target_audience"`
	ContentWarnings []string `json:"content_warnings"`
}

// FieldType represents the type of a schema field.
type FieldType string

const (
	TypeString      FieldType = "string"
	TypeStringArray FieldType = "array of strings"
)

// Field describes a single field of the metadata record.
type Field struct {
	Name        string
	Type        FieldType
	Description string
	Required    bool
}

// fields is the schema layout, declared once. The record shape is fixed, so
// the description is spelled out here rather than derived by reflection.
var fields = []Field{
	{
		Name:        "genres",
		Type:        TypeStringArray,
		Description: "List of genres, e.g., ['Drama', 'Thriller']",
		Required:    true,
	},
	{
		Name:        "themes",
		Type:        TypeStringArray,
		Description: "List of themes, e.g., ['family', 'redemption']",
		Required:    true,
	},
	{
		Name:        "mood",
		Type:        TypeString,
		Description: "Overall mood, e.g., 'dark', 'lighthearted', 'suspenseful'",
		Required:    true,
	},
	{
		Name:        "target_audience",
		Type:        TypeString,
		Description: "Intended audience, one of: kids, teens, adults, family",
		Required:    true,
	},
	{
		Name:        "content_warnings",
		Type:        TypeStringArray,
		Description: "Content warnings, e.g., ['violence', 'language']",
		Required:    false,
	},
}

// Fields returns the metadata record's field layout.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// JSONSchema renders the field layout as a JSON Schema document for
// embedding in prompts.
func JSONSchema() map[string]any {
	properties := make(map[string]any, len(fields))
	required := make([]string, 0, len(fields))

	for _, f := range fields {
		prop := map[string]any{
			"description": f.Description,
		}
		if f.Type == TypeStringArray {
			prop["type"] = "array"
			prop["items"] = map[string]any{"type": "string"}
		} else {
			prop["type"] = "string"
		}
		properties[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}

	return map[string]any{
		"type":       "object",
		"title":      "ContentMetadata",
		"properties": properties,
		"required":   required,
	}
}

// PromptDescription renders the schema as the block embedded in the
// extraction prompt.
func PromptDescription() string {
	data, err := json.MarshalIndent(JSONSchema(), "", "  ")
	if err != nil {
		// The schema is static; marshaling cannot fail.
		panic(err)
	}
	return "Required JSON schema: " + string(data)
}
