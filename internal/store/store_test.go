package store

import (
	"context"
	"testing"

	"github.com/certforge/certforge/internal/certification"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSession() *Session {
	return &Session{
		Certification: certification.Certification{
			Title:    "Certified Platform Engineer",
			Overview: "An overview.",
			Modules: []certification.Module{
				{ModuleNumber: 1, Title: "Foundations", DiagramImage: []byte("diagram")},
			},
		},
		Badge:   []byte("badge-png"),
		Persona: certification.PersonaEncouragingCoach,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// No session yet.
	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if loaded != nil {
		t.Fatal("expected nil session when none exists")
	}

	if err := repo.Save(ctx, testSession()); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected saved session")
	}
	if loaded.Certification.Title != "Certified Platform Engineer" {
		t.Fatalf("unexpected title: %q", loaded.Certification.Title)
	}
	if string(loaded.Badge) != "badge-png" {
		t.Fatalf("unexpected badge: %q", loaded.Badge)
	}
	if loaded.Persona != certification.PersonaEncouragingCoach {
		t.Fatalf("unexpected persona: %q", loaded.Persona)
	}
	if string(loaded.Certification.Modules[0].DiagramImage) != "diagram" {
		t.Fatal("diagram image must round-trip with the certification")
	}
}

func TestSessionSaveReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	first := testSession()
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := testSession()
	second.Certification.Title = "Certified SRE"
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	count, err := s.Client().SessionSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 stored session, got %d", count)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Certification.Title != "Certified SRE" {
		t.Fatalf("expected replacement session, got %q", loaded.Certification.Title)
	}
}

func TestSessionClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testSession()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if loaded != nil {
		t.Fatal("expected no session after clear")
	}
}

func TestSessionLoad_CorruptIsNothingToResume(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Store a snapshot whose certification payload is unusable.
	_, err := s.Client().SessionSnapshot.Create().
		SetCertification(map[string]any{"modules": "not-a-list"}).
		SetPersona("Encouraging Coach").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed corrupt session: %v", err)
	}

	loaded, err := s.SessionRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load must not error on corrupt data: %v", err)
	}
	if loaded != nil {
		t.Fatal("corrupt session must read as nothing to resume")
	}
}

func TestEventRepoAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Kind:         "content",
		Model:        "gemini-2.5-flash",
		Purpose:      "curriculum-research",
		InputTokens:  1200,
		OutputTokens: 4800,
		LatencyMs:    3100,
		Success:      true,
		RequestBody:  "[user]\nprompt",
		ResponseBody: "curriculum text",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Kind:         "image",
		Model:        "imagen-4.0-generate-001",
		Purpose:      "diagram",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append second: %v", err)
	}

	events, err := s.Client().LLMRequestEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Sequence >= events[1].Sequence {
		t.Fatal("sequence numbers must be strictly increasing")
	}
}

func seedEvents(t *testing.T, repo EventRepo) {
	t.Helper()
	ctx := context.Background()
	data := []LLMRequestEventData{
		{Kind: "content", Model: "gemini-2.5-flash", Purpose: "curriculum-research", InputTokens: 1000, OutputTokens: 4000, LatencyMs: 3000, Success: true},
		{Kind: "content", Model: "gemini-2.5-flash", Purpose: "curriculum-structuring", InputTokens: 5000, OutputTokens: 8000, LatencyMs: 5000, Success: true},
		{Kind: "image", Model: "imagen-4.0-generate-001", Purpose: "diagram", Success: true},
		{Kind: "image", Model: "imagen-4.0-generate-001", Purpose: "diagram", Success: false, ErrorMessage: "rate limited"},
	}
	for _, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("seed event: %v", err)
		}
	}
}

func TestQueryLLMEventsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedEvents(t, repo)

	events, err := repo.QueryLLMEvents(context.Background(), QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Purpose != "diagram" {
		t.Fatalf("newest event first, got purpose %q", events[0].Purpose)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedEvents(t, repo)

	events, err := repo.QueryLLMEvents(context.Background(), QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	got, err := repo.GetLLMEvent(context.Background(), events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != events[0].ID {
		t.Fatalf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(context.Background(), 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for a missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedEvents(t, repo)
	ctx := context.Background()

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	usage := make(map[string]PurposeUsage)
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	if usage["diagram"].Calls != 2 {
		t.Fatalf("diagram calls = %d, want 2", usage["diagram"].Calls)
	}
	if usage["curriculum-research"].OutputTokens != 4000 {
		t.Fatalf("research output tokens = %d, want 4000", usage["curriculum-research"].OutputTokens)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := make(map[string]ModelUsage)
	for _, u := range byModel {
		models[u.Model] = u
	}
	if models["gemini-2.5-flash"].InputTokens != 6000 {
		t.Fatalf("gemini input tokens = %d, want 6000", models["gemini-2.5-flash"].InputTokens)
	}
}
