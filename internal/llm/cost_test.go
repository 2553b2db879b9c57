package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		found bool
	}{
		{"gemini-2.5-flash", true},
		{"gemini-2.5-flash-preview-09-2025", true},
		{"claude-haiku-4-5-20251001", true},
		{"gpt-4o-mini", true},
		{"imagen-4.0-generate-001", false},
		{"mock", false},
	}

	for _, tt := range tests {
		got := LookupCost(tt.model)
		if (got != nil) != tt.found {
			t.Errorf("LookupCost(%q) found = %v, want %v", tt.model, got != nil, tt.found)
		}
	}
}

func TestCostEstimate(t *testing.T) {
	cost := LookupCost("gemini-2.5-flash")
	if cost == nil {
		t.Fatal("expected pricing for gemini-2.5-flash")
	}

	// 1M input at $0.30 + 1M output at $2.50
	got := cost.Cost(1_000_000, 1_000_000)
	if math.Abs(got-2.80) > 1e-9 {
		t.Fatalf("cost = %v, want 2.80", got)
	}
}

func TestPrefixOrderPrefersLongestMatch(t *testing.T) {
	mini := LookupCost("gpt-4o-mini")
	full := LookupCost("gpt-4o")
	if mini.InputPerMTok == full.InputPerMTok {
		t.Fatal("gpt-4o-mini must not fall through to gpt-4o pricing")
	}
}
