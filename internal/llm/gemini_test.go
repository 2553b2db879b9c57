package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"totalDurationHours": map[string]any{"type": "number"},
			"level": map[string]any{"type": "string", "enum": []any{"Beginner", "Intermediate", "Expert"}},
			"modules": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object", "properties": map[string]any{"moduleNumber": map[string]any{"type": "integer"}}},
			},
		},
		"required": []any{"title", "modules"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["title"].Type != genai.TypeString {
		t.Fatalf("expected STRING for title, got %s", schema.Properties["title"].Type)
	}
	if schema.Properties["totalDurationHours"].Type != genai.TypeNumber {
		t.Fatalf("expected NUMBER for totalDurationHours, got %s", schema.Properties["totalDurationHours"].Type)
	}
	if len(schema.Properties["level"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["level"].Enum))
	}
	if schema.Properties["modules"].Type != genai.TypeArray {
		t.Fatalf("expected ARRAY for modules, got %s", schema.Properties["modules"].Type)
	}
	items := schema.Properties["modules"].Items
	if items == nil || items.Properties["moduleNumber"].Type != genai.TypeInteger {
		t.Fatal("expected INTEGER for modules items moduleNumber")
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestMapGeminiError_RateLimit(t *testing.T) {
	err := mapGeminiError(&genai.APIError{Code: 429, Message: "quota exceeded"})
	if !IsRateLimit(err) {
		t.Fatalf("expected rate limit error, got: %v", err)
	}
}

func TestMapGeminiError_ServerError(t *testing.T) {
	err := mapGeminiError(&genai.APIError{Code: 503, Message: "overloaded"})
	if IsRateLimit(err) {
		t.Fatal("503 should not be classified as rate limit")
	}
	svcErr, ok := err.(*ErrService)
	if !ok {
		t.Fatalf("expected ErrService, got: %T", err)
	}
	if svcErr.Status != 503 {
		t.Fatalf("expected status 503, got %d", svcErr.Status)
	}
}

func TestExtractGroundingSources(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				GroundingMetadata: &genai.GroundingMetadata{
					GroundingChunks: []*genai.GroundingChunk{
						{Web: &genai.GroundingChunkWeb{Title: "CNCF Survey", URI: "https://cncf.io/survey"}},
						{Web: &genai.GroundingChunkWeb{Title: "No URI here"}},
						{Web: nil},
					},
				},
			},
		},
	}

	sources := extractGroundingSources(result)
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources (nil web skipped), got %d", len(sources))
	}
	if sources[0].Title != "CNCF Survey" || sources[0].URI != "https://cncf.io/survey" {
		t.Fatalf("unexpected first source: %+v", sources[0])
	}
	// Incomplete entries pass through; filtering is the caller's concern.
	if sources[1].URI != "" {
		t.Fatalf("expected empty URI preserved, got %q", sources[1].URI)
	}
}

func TestExtractGroundingSources_NoMetadata(t *testing.T) {
	result := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}
	if sources := extractGroundingSources(result); sources != nil {
		t.Fatalf("expected nil sources, got %v", sources)
	}
}
