package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"hours": map[string]any{"type": "number", "minimum": 0},
				"level": map[string]any{"type": "string", "enum": []any{"Beginner", "Intermediate", "Expert"}},
			},
			"required": []any{"title", "hours"},
		},
	}
}

func TestValidateAgainstSchema_Valid(t *testing.T) {
	raw := json.RawMessage(`{"title":"Kubernetes Security","hours":40,"level":"Expert"}`)
	if err := validateAgainstSchema(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateAgainstSchema_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"title":"Terraform Basics","hours":8}`)
	if err := validateAgainstSchema(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateAgainstSchema_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title":"Incomplete"}`)
	err := validateAgainstSchema(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateAgainstSchema_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"title":"Bad","hours":"forty"}`)
	err := validateAgainstSchema(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateAgainstSchema_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"title":"Bad","hours":10,"level":"Wizard"}`)
	if err := validateAgainstSchema(testSchema(), raw); err == nil {
		t.Fatal("expected error for invalid enum value")
	}
}

func TestValidateAgainstSchema_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"title": "unterminated`)
	err := validateAgainstSchema(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateAgainstSchema_NilSchema(t *testing.T) {
	raw := json.RawMessage(`not even json`)
	if err := validateAgainstSchema(nil, raw); err != nil {
		t.Fatalf("nil schema should skip validation, got: %v", err)
	}
}

func TestCompileSchema_Cached(t *testing.T) {
	s := testSchema()
	first, err := compileSchema(s)
	if err != nil {
		t.Fatalf("first compile failed: %v", err)
	}
	second, err := compileSchema(s)
	if err != nil {
		t.Fatalf("second compile failed: %v", err)
	}
	if first != second {
		t.Fatal("expected cached schema instance on second compile")
	}
}
