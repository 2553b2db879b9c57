package builder

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/certforge/certforge/internal/agents"
	"github.com/certforge/certforge/internal/assets"
	"github.com/certforge/certforge/internal/certification"
	"github.com/certforge/certforge/internal/curriculum"
	"github.com/certforge/certforge/internal/llm"
	"github.com/certforge/certforge/internal/store"
	"github.com/certforge/certforge/internal/tutor"
)

// Result is a fully built session: the certification with diagrams
// attached, the badge, and a live tutor chat.
type Result struct {
	Certification *certification.Certification
	Badge         []byte
	Persona       certification.TutorPersona
	Chat          llm.ChatSession
}

// ErrSuperseded indicates a newer build started while this one was running;
// its output was discarded.
var ErrSuperseded = fmt.Errorf("build superseded by a newer run")

// Builder orchestrates the full certification pipeline: curriculum
// generation, asset enrichment, session persistence, and tutor chat setup.
// One build runs at a time; starting a new build supersedes the previous
// one, and a superseded run never mutates shared state again.
type Builder struct {
	curriculum *curriculum.Service
	assets     *assets.Service
	tutor      *tutor.Service
	sessions   store.SessionRepo
	tracker    *agents.Tracker

	mu        sync.Mutex
	activeRun uuid.UUID
	result    *Result
}

// New creates a Builder.
func New(cur *curriculum.Service, ast *assets.Service, tut *tutor.Service, sessions store.SessionRepo) *Builder {
	return &Builder{
		curriculum: cur,
		assets:     ast,
		tutor:      tut,
		sessions:   sessions,
		tracker:    agents.NewTracker(),
	}
}

// Tracker returns the live agent tracker for progress display.
func (b *Builder) Tracker() *agents.Tracker {
	return b.tracker
}

// Tutor exposes the tutor service for on-demand explanations.
func (b *Builder) Tutor() *tutor.Service {
	return b.tutor
}

// Result returns the current build result, or nil if no build has
// completed.
func (b *Builder) Result() *Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.result
}

// Build runs the full pipeline for the given input. Any previous result and
// saved session are discarded before the first agent goes in progress. On
// failure every in-progress agent flips to error and the error is returned.
func (b *Builder) Build(ctx context.Context, input certification.BuildInput) (*Result, error) {
	runID := b.startRun(ctx)

	result, err := b.run(ctx, input, runID)
	if err != nil {
		if b.isActive(runID) {
			b.tracker.FailInProgress()
		}
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.activeRun != runID {
		return nil, ErrSuperseded
	}
	b.result = result
	return result, nil
}

// startRun claims the active-run slot, discards prior state, and resets the
// crew. The saved session is cleared here so stale artifacts never outlive
// the start of a new build.
func (b *Builder) startRun(ctx context.Context) uuid.UUID {
	runID := uuid.New()

	b.mu.Lock()
	b.activeRun = runID
	b.result = nil
	b.mu.Unlock()

	if err := b.sessions.Clear(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to clear saved session: %v\n", err)
	}
	b.tracker.Reset()
	return runID
}

func (b *Builder) isActive(runID uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.activeRun == runID
}

func (b *Builder) run(ctx context.Context, input certification.BuildInput, runID uuid.UUID) (*Result, error) {
	// Stage 1: curriculum. The research and structuring agents go in
	// progress together; the whole curriculum crew completes together.
	b.tracker.SetMany([]agents.ID{agents.MarketAnalysis, agents.CurriculumDesign}, agents.StatusInProgress)

	cert, err := b.curriculum.Generate(ctx, input, func(id agents.ID, subStatus string) {
		if b.isActive(runID) {
			b.tracker.SetSubStatus(id, subStatus)
		}
	})
	if err != nil {
		return nil, err
	}
	if !b.isActive(runID) {
		return nil, ErrSuperseded
	}

	b.tracker.SetMany([]agents.ID{agents.ContentCreation, agents.LabDevelopment, agents.AssessmentDesign}, agents.StatusInProgress)
	b.tracker.SetMany(agents.CurriculumAgents, agents.StatusCompleted)

	// Stage 2: assets. Badge and diagrams run inside Enrich; the badge
	// agent completes first, the multimedia agent after the diagrams are
	// merged in.
	b.tracker.SetMany([]agents.ID{agents.MultimediaProduction, agents.Credentialing}, agents.StatusInProgress)

	enriched, err := b.assets.Enrich(ctx, cert)
	if err != nil {
		return nil, err
	}
	if !b.isActive(runID) {
		return nil, ErrSuperseded
	}

	b.tracker.Set(agents.Credentialing, agents.StatusCompleted)
	enriched.Apply(cert)
	b.tracker.Set(agents.MultimediaProduction, agents.StatusCompleted)

	// Persist the finished session. A storage failure costs resumability,
	// not the build. A stale run must never write its snapshot over the
	// successor's cleared state, so re-check right before the write.
	if !b.isActive(runID) {
		return nil, ErrSuperseded
	}
	if err := b.sessions.Save(ctx, &store.Session{
		Certification: *cert,
		Badge:         enriched.Badge,
		Persona:       input.Persona,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save session: %v\n", err)
	}

	// Stage 3: tutor chat.
	if !b.isActive(runID) {
		return nil, ErrSuperseded
	}
	b.tracker.Set(agents.TutorPersona, agents.StatusInProgress)
	chat, err := b.tutor.NewChat(ctx, cert, input.Persona)
	if err != nil {
		return nil, err
	}
	b.tracker.Set(agents.TutorPersona, agents.StatusCompleted)

	return &Result{
		Certification: cert,
		Badge:         enriched.Badge,
		Persona:       input.Persona,
		Chat:          chat,
	}, nil
}

// Resume loads the saved session, marks the whole crew completed, and
// reopens the tutor chat. Returns nil with no error when there is nothing
// to resume.
func (b *Builder) Resume(ctx context.Context) (*Result, error) {
	session, err := b.sessions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	chat, err := b.tutor.NewChat(ctx, &session.Certification, session.Persona)
	if err != nil {
		return nil, fmt.Errorf("reopen tutor chat: %w", err)
	}

	result := &Result{
		Certification: &session.Certification,
		Badge:         session.Badge,
		Persona:       session.Persona,
		Chat:          chat,
	}

	b.mu.Lock()
	b.activeRun = uuid.New()
	b.result = result
	b.mu.Unlock()
	b.tracker.CompleteAll()

	return result, nil
}

// Reset discards the current result and any saved session.
func (b *Builder) Reset(ctx context.Context) error {
	b.mu.Lock()
	b.activeRun = uuid.New()
	b.result = nil
	b.mu.Unlock()
	b.tracker.Reset()

	if err := b.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
