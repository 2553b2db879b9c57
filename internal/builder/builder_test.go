package builder

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/certforge/certforge/internal/agents"
	"github.com/certforge/certforge/internal/assets"
	"github.com/certforge/certforge/internal/certification"
	"github.com/certforge/certforge/internal/curriculum"
	"github.com/certforge/certforge/internal/llm"
	"github.com/certforge/certforge/internal/store"
	"github.com/certforge/certforge/internal/tutor"
)

// fakeSessions is an in-memory SessionRepo that records operations in
// order.
type fakeSessions struct {
	mu      sync.Mutex
	session *store.Session
	ops     []string
}

func (f *fakeSessions) Save(_ context.Context, s *store.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = s
	f.ops = append(f.ops, "save")
	return nil
}

func (f *fakeSessions) Load(_ context.Context) (*store.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "load")
	return f.session, nil
}

func (f *fakeSessions) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = nil
	f.ops = append(f.ops, "clear")
	return nil
}

func testInput() certification.BuildInput {
	return certification.BuildInput{
		Topic:   "Site Reliability Engineering",
		Level:   certification.LevelIntermediate,
		Hours:   24,
		Persona: certification.PersonaEncouragingCoach,
	}
}

func certJSON() json.RawMessage {
	cert := certification.Certification{
		Title:    "Certified SRE",
		Overview: "An overview.",
		Modules: []certification.Module{
			{ModuleNumber: 1, Title: "SLOs", Description: "Service level objectives."},
			{ModuleNumber: 2, Title: "Incident Response", Description: "On-call practice."},
		},
	}
	raw, _ := json.Marshal(cert)
	return raw
}

// newTestBuilder wires a Builder over a single mock client.
func newTestBuilder(m *llm.MockClient, sessions store.SessionRepo) *Builder {
	return New(
		curriculum.New(m, curriculum.DefaultConfig()),
		assets.New(m, assets.DefaultConfig()),
		tutor.New(m, m, m),
		sessions,
	)
}

// queueHappyPath loads the mock with everything one successful build
// consumes: research, structuring, badge, and one diagram per module.
func queueHappyPath(m *llm.MockClient) {
	m.AddContentResponse(llm.MockContentResponse{
		Text:    json.RawMessage("research text"),
		Sources: []llm.GroundingSource{{Title: "SRE Book", URI: "https://sre.google/book"}},
	})
	m.AddContentResponse(llm.MockContentResponse{Text: certJSON()})
	for range 3 {
		m.AddImageResponse(llm.MockImageResponse{Images: [][]byte{[]byte("png")}})
	}
	m.AddChatReply("Welcome!")
}

func TestBuild_HappyPath(t *testing.T) {
	m := llm.NewMockClient()
	queueHappyPath(m)
	sessions := &fakeSessions{}
	b := newTestBuilder(m, sessions)

	result, err := b.Build(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Certification.Title != "Certified SRE" {
		t.Fatalf("unexpected title: %q", result.Certification.Title)
	}
	if len(result.Badge) == 0 {
		t.Fatal("badge missing")
	}
	if result.Chat == nil {
		t.Fatal("tutor chat missing")
	}
	for _, mod := range result.Certification.Modules {
		if len(mod.DiagramImage) == 0 {
			t.Fatalf("module %d missing diagram", mod.ModuleNumber)
		}
	}

	// Every agent ends completed on success.
	for _, a := range b.Tracker().Snapshot() {
		if a.Status != agents.StatusCompleted {
			t.Fatalf("agent %s = %s, want completed", a.ID, a.Status)
		}
	}
	if b.Tracker().Progress() != 100 {
		t.Fatalf("expected 100%% progress, got %v", b.Tracker().Progress())
	}

	// The finished session was persisted.
	if sessions.session == nil {
		t.Fatal("session not saved")
	}
	if sessions.session.Persona != certification.PersonaEncouragingCoach {
		t.Fatalf("unexpected persisted persona: %q", sessions.session.Persona)
	}
}

func TestBuild_NoAgentSkipsInProgress(t *testing.T) {
	m := llm.NewMockClient()
	queueHappyPath(m)
	b := newTestBuilder(m, &fakeSessions{})

	// Record every status an agent passes through.
	seen := make(map[agents.ID][]agents.Status)
	b.Tracker().OnChange(func() {
		for _, a := range b.Tracker().Snapshot() {
			hist := seen[a.ID]
			if len(hist) == 0 || hist[len(hist)-1] != a.Status {
				seen[a.ID] = append(hist, a.Status)
			}
		}
	})

	if _, err := b.Build(context.Background(), testInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for id, hist := range seen {
		reachedInProgress := false
		for _, st := range hist {
			if st == agents.StatusInProgress {
				reachedInProgress = true
			}
			if st == agents.StatusCompleted && !reachedInProgress {
				t.Fatalf("agent %s reached completed without passing in_progress: %v", id, hist)
			}
		}
	}
}

func TestBuild_CurriculumFailure(t *testing.T) {
	m := llm.NewMockClient()
	m.AddContentResponse(llm.MockContentResponse{Err: &llm.ErrService{Status: 500}})
	b := newTestBuilder(m, &fakeSessions{})

	_, err := b.Build(context.Background(), testInput())
	var resErr *curriculum.ErrResearchFailed
	if !errors.As(err, &resErr) {
		t.Fatalf("expected ErrResearchFailed, got: %v", err)
	}

	// The two active agents flip to error; nothing stays in progress.
	snap := b.Tracker().Snapshot()
	if snap[0].Status != agents.StatusError || snap[1].Status != agents.StatusError {
		t.Fatal("research and structuring agents must be errored")
	}
	for _, a := range snap {
		if a.Status == agents.StatusInProgress {
			t.Fatalf("agent %s left in progress after failure", a.ID)
		}
	}
}

func TestBuild_BadgeFailure(t *testing.T) {
	m := llm.NewMockClient()
	m.AddContentResponse(llm.MockContentResponse{Text: json.RawMessage("research text")})
	m.AddContentResponse(llm.MockContentResponse{Text: certJSON()})
	// All image calls fail; badge failure is fatal, diagram failures are not.
	for range 3 {
		m.AddImageResponse(llm.MockImageResponse{Err: &llm.ErrService{Status: 500}})
	}
	b := newTestBuilder(m, &fakeSessions{})

	_, err := b.Build(context.Background(), testInput())
	var badgeErr *assets.ErrBadgeFailed
	if !errors.As(err, &badgeErr) {
		t.Fatalf("expected ErrBadgeFailed, got: %v", err)
	}

	snap := b.Tracker().Snapshot()
	byID := make(map[agents.ID]agents.Status)
	for _, a := range snap {
		byID[a.ID] = a.Status
	}
	if byID[agents.MultimediaProduction] != agents.StatusError || byID[agents.Credentialing] != agents.StatusError {
		t.Fatal("asset agents must be errored")
	}
	if byID[agents.MarketAnalysis] != agents.StatusCompleted {
		t.Fatal("completed curriculum agents must stay completed")
	}
	if byID[agents.TutorPersona] != agents.StatusPending {
		t.Fatal("unreached agents stay pending")
	}
}

func TestBuild_ClearsPreviousSessionFirst(t *testing.T) {
	m := llm.NewMockClient()
	queueHappyPath(m)
	sessions := &fakeSessions{
		session: &store.Session{
			Certification: certification.Certification{Title: "Stale"},
			Badge:         []byte("stale-badge"),
		},
	}
	b := newTestBuilder(m, sessions)

	// The stale session must be gone before any agent goes in progress.
	cleared := false
	sawInProgressBeforeClear := false
	b.Tracker().OnChange(func() {
		sessions.mu.Lock()
		for _, op := range sessions.ops {
			if op == "clear" {
				cleared = true
			}
		}
		sessions.mu.Unlock()
		if !cleared {
			for _, a := range b.Tracker().Snapshot() {
				if a.Status == agents.StatusInProgress {
					sawInProgressBeforeClear = true
				}
			}
		}
	})

	result, err := b.Build(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sawInProgressBeforeClear {
		t.Fatal("agents went in progress before the stale session was cleared")
	}
	if sessions.session.Certification.Title != "Certified SRE" {
		t.Fatal("stale session must be replaced by the new build")
	}
	if string(result.Badge) == "stale-badge" {
		t.Fatal("stale badge leaked into the new result")
	}
}

func TestBuild_SupersededBeforeSaveDoesNotPersist(t *testing.T) {
	m := llm.NewMockClient()
	queueHappyPath(m)
	sessions := &fakeSessions{}
	b := newTestBuilder(m, sessions)

	// Supersede the run the moment enrichment finishes, in the window
	// between the asset stage and the session write.
	superseded := false
	b.Tracker().OnChange(func() {
		if superseded {
			return
		}
		for _, a := range b.Tracker().Snapshot() {
			if a.ID == agents.MultimediaProduction && a.Status == agents.StatusCompleted {
				superseded = true
				if err := b.Reset(context.Background()); err != nil {
					t.Errorf("reset: %v", err)
				}
			}
		}
	})

	_, err := b.Build(context.Background(), testInput())
	if !errors.Is(err, ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded, got: %v", err)
	}

	sessions.mu.Lock()
	defer sessions.mu.Unlock()
	if sessions.session != nil {
		t.Fatal("a superseded run must not persist its session")
	}
	for _, op := range sessions.ops {
		if op == "save" {
			t.Fatalf("save issued by a superseded run: %v", sessions.ops)
		}
	}
}

func TestResume(t *testing.T) {
	m := llm.NewMockClient()
	sessions := &fakeSessions{
		session: &store.Session{
			Certification: certification.Certification{
				Title:    "Certified SRE",
				Overview: "An overview.",
			},
			Badge:   []byte("badge"),
			Persona: certification.PersonaFormalProfessor,
		},
	}
	b := newTestBuilder(m, sessions)

	result, err := b.Resume(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected resumed result")
	}
	if result.Persona != certification.PersonaFormalProfessor {
		t.Fatalf("unexpected persona: %q", result.Persona)
	}
	if b.Tracker().Progress() != 100 {
		t.Fatal("resumed session must show the crew completed")
	}
	if b.Result() == nil {
		t.Fatal("resumed result must be retained")
	}
}

func TestResume_NothingSaved(t *testing.T) {
	b := newTestBuilder(llm.NewMockClient(), &fakeSessions{})
	result, err := b.Resume(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatal("expected nil result with nothing to resume")
	}
}

func TestReset(t *testing.T) {
	m := llm.NewMockClient()
	queueHappyPath(m)
	sessions := &fakeSessions{}
	b := newTestBuilder(m, sessions)

	if _, err := b.Build(context.Background(), testInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := b.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if b.Result() != nil {
		t.Fatal("result must be discarded on reset")
	}
	if sessions.session != nil {
		t.Fatal("saved session must be cleared on reset")
	}
	if b.Tracker().Progress() != 0 {
		t.Fatal("tracker must be back to pending")
	}
}
