package store

import (
	"context"
	"time"

	"github.com/certforge/certforge/internal/certification"
)

// Session is a saved build session: the generated certification plus the
// artifacts that belong with it.
type Session struct {
	ID            int
	Timestamp     time.Time
	Certification certification.Certification
	Badge         []byte
	Persona       certification.TutorPersona
}

// SessionRepo persists the single resumable build session.
type SessionRepo interface {
	// Save stores the session, replacing any previous one.
	Save(ctx context.Context, session *Session) error

	// Load returns the saved session, or nil if none exists or the stored
	// data is unusable. A corrupt session is treated as nothing to resume.
	Load(ctx context.Context) (*Session, error)

	// Clear deletes any saved session.
	Clear(ctx context.Context) error
}

// LLMRequestEventData captures the data for a single model request event.
type LLMRequestEventData struct {
	Kind         string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	RequestBody  string
	ResponseBody string
	ErrorMessage string
}

// LLMRequestEvent is a stored model request event.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// QueryOpts filters event queries.
type QueryOpts struct {
	// Limit caps the number of returned events. Zero means the default of 50.
	Limit int
}

// PurposeUsage aggregates token usage for one request purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to model request events.
type EventRepo interface {
	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
