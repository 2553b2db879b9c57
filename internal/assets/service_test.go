package assets

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/certforge/certforge/internal/certification"
	"github.com/certforge/certforge/internal/llm"
)

// fakeImages dispatches on the request so badge and diagram behavior can be
// scripted independently. It records every call.
type fakeImages struct {
	mu       sync.Mutex
	calls    []llm.ImageRequest
	generate func(req llm.ImageRequest, callNum int) ([][]byte, error)
}

func (f *fakeImages) GenerateImages(_ context.Context, req llm.ImageRequest) ([][]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	n := len(f.calls)
	f.mu.Unlock()
	return f.generate(req, n)
}

func (f *fakeImages) recorded() []llm.ImageRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]llm.ImageRequest, len(f.calls))
	copy(out, f.calls)
	return out
}

func isBadge(req llm.ImageRequest) bool {
	return req.AspectRatio == "1:1"
}

func fastConfig() Config {
	return Config{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		Multiplier:  2.0,
		MaxWait:     5 * time.Millisecond,
	}
}

func testCert() *certification.Certification {
	return &certification.Certification{
		Title: "Certified Terraform Associate",
		Modules: []certification.Module{
			{ModuleNumber: 1, Title: "State", Description: "How state works."},
			{ModuleNumber: 2, Title: "Providers", Description: "Provider plugins."},
			{ModuleNumber: 3, Title: "Modules", Description: "Reusable modules."},
		},
	}
}

func TestEnrich_BadgeAndDiagrams(t *testing.T) {
	f := &fakeImages{
		generate: func(req llm.ImageRequest, _ int) ([][]byte, error) {
			if isBadge(req) {
				return [][]byte{[]byte("badge-png")}, nil
			}
			return [][]byte{[]byte("diagram-png")}, nil
		},
	}

	svc := New(f, fastConfig())
	cert := testCert()
	result, err := svc.Enrich(context.Background(), cert)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(result.Badge) != "badge-png" {
		t.Fatalf("unexpected badge: %q", result.Badge)
	}
	if len(result.Diagrams) != 3 {
		t.Fatalf("expected 3 diagrams, got %d", len(result.Diagrams))
	}

	// One badge call, three diagram calls, diagrams in module order.
	var diagramPrompts []string
	badges := 0
	for _, call := range f.recorded() {
		if isBadge(call) {
			badges++
			continue
		}
		if call.AspectRatio != "16:9" {
			t.Fatalf("diagram aspect ratio = %q, want 16:9", call.AspectRatio)
		}
		diagramPrompts = append(diagramPrompts, call.Prompt)
	}
	if badges != 1 {
		t.Fatalf("expected 1 badge call, got %d", badges)
	}
	for i, title := range []string{"State", "Providers", "Modules"} {
		if !strings.Contains(diagramPrompts[i], title) {
			t.Fatalf("diagram call %d should be for module %q", i, title)
		}
	}
}

func TestEnrich_DiagramRetriesStaySequential(t *testing.T) {
	// Module 1 rate-limits twice; its full retry sequence must resolve
	// before module 2's first call goes out.
	stateCalls := 0
	f := &fakeImages{
		generate: func(req llm.ImageRequest, _ int) ([][]byte, error) {
			if isBadge(req) {
				return [][]byte{[]byte("badge-png")}, nil
			}
			if strings.Contains(req.Prompt, "State") {
				stateCalls++
				if stateCalls < 3 {
					return nil, &llm.ErrRateLimit{}
				}
			}
			return [][]byte{[]byte("diagram-png")}, nil
		},
	}

	svc := New(f, fastConfig())
	result, err := svc.Enrich(context.Background(), testCert())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Diagrams) != 3 {
		t.Fatalf("expected 3 diagrams, got %d", len(result.Diagrams))
	}

	var order []string
	for _, call := range f.recorded() {
		if isBadge(call) {
			continue
		}
		switch {
		case strings.Contains(call.Prompt, "State"):
			order = append(order, "m1")
		case strings.Contains(call.Prompt, "Providers"):
			order = append(order, "m2")
		default:
			order = append(order, "m3")
		}
	}

	want := []string{"m1", "m1", "m1", "m2", "m3"}
	if len(order) != len(want) {
		t.Fatalf("expected %d diagram calls, got %v", len(want), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("call order %v, want %v", order, want)
		}
	}
}

func TestEnrich_AppliesDiagramsByModuleNumber(t *testing.T) {
	result := &Result{
		Badge: []byte("b"),
		Diagrams: map[int][]byte{
			1: []byte("one"),
			3: []byte("three"),
		},
	}
	cert := testCert()
	result.Apply(cert)

	if string(cert.Modules[0].DiagramImage) != "one" {
		t.Fatal("module 1 diagram not applied")
	}
	if cert.Modules[1].DiagramImage != nil {
		t.Fatal("module 2 has no diagram and must stay untouched")
	}
	if string(cert.Modules[2].DiagramImage) != "three" {
		t.Fatal("module 3 diagram not applied")
	}
}

func TestGenerateDiagram_RetriesRateLimit(t *testing.T) {
	attempts := 0
	f := &fakeImages{
		generate: func(req llm.ImageRequest, _ int) ([][]byte, error) {
			attempts++
			if attempts < 3 {
				return nil, &llm.ErrRateLimit{}
			}
			return [][]byte{[]byte("diagram-png")}, nil
		},
	}

	svc := New(f, fastConfig())
	img, err := svc.generateDiagram(context.Background(), certification.Module{ModuleNumber: 1, Title: "State"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(img) != "diagram-png" {
		t.Fatalf("unexpected image: %q", img)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestGenerateDiagram_ExhaustsRetries(t *testing.T) {
	attempts := 0
	f := &fakeImages{
		generate: func(req llm.ImageRequest, _ int) ([][]byte, error) {
			attempts++
			return nil, &llm.ErrRateLimit{}
		},
	}

	svc := New(f, fastConfig())
	_, err := svc.generateDiagram(context.Background(), certification.Module{ModuleNumber: 1})
	if !llm.IsRateLimit(err) {
		t.Fatalf("expected rate limit error after exhaustion, got: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", attempts)
	}
}

func TestGenerateDiagram_NonRetriableFailsFast(t *testing.T) {
	attempts := 0
	f := &fakeImages{
		generate: func(req llm.ImageRequest, _ int) ([][]byte, error) {
			attempts++
			return nil, &llm.ErrService{Status: 400}
		},
	}

	svc := New(f, fastConfig())
	_, err := svc.generateDiagram(context.Background(), certification.Module{ModuleNumber: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("non-retriable errors must not retry, got %d attempts", attempts)
	}
}

func TestEnrich_DiagramFailureIsNotFatal(t *testing.T) {
	f := &fakeImages{
		generate: func(req llm.ImageRequest, _ int) ([][]byte, error) {
			if isBadge(req) {
				return [][]byte{[]byte("badge-png")}, nil
			}
			if strings.Contains(req.Prompt, "Providers") {
				return nil, &llm.ErrService{Status: 400}
			}
			return [][]byte{[]byte("diagram-png")}, nil
		},
	}

	svc := New(f, fastConfig())
	result, err := svc.Enrich(context.Background(), testCert())
	if err != nil {
		t.Fatalf("diagram failure must not abort enrichment: %v", err)
	}
	if len(result.Diagrams) != 2 {
		t.Fatalf("expected 2 diagrams, got %d", len(result.Diagrams))
	}
	if _, ok := result.Diagrams[2]; ok {
		t.Fatal("failed module must be absent from diagrams")
	}
}

func TestEnrich_BadgeFailureIsFatal(t *testing.T) {
	f := &fakeImages{
		generate: func(req llm.ImageRequest, _ int) ([][]byte, error) {
			if isBadge(req) {
				return nil, &llm.ErrService{Status: 500}
			}
			return [][]byte{[]byte("diagram-png")}, nil
		},
	}

	svc := New(f, fastConfig())
	_, err := svc.Enrich(context.Background(), testCert())

	var badgeErr *ErrBadgeFailed
	if !errors.As(err, &badgeErr) {
		t.Fatalf("expected ErrBadgeFailed, got: %v", err)
	}
}

func TestEnrich_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &fakeImages{
		generate: func(req llm.ImageRequest, _ int) ([][]byte, error) {
			return [][]byte{[]byte("png")}, nil
		},
	}

	svc := New(f, fastConfig())
	if _, err := svc.Enrich(ctx, testCert()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}
