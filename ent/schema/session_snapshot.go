package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionSnapshot captures a completed build session so a certification can
// be reopened without regenerating it. Only the latest snapshot is ever
// loaded.
type SessionSnapshot struct {
	ent.Schema
}

func (SessionSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the session was saved"),
		field.JSON("certification", map[string]any{}).
			Comment("The full certification document as JSON, diagrams included"),
		field.Bytes("badge").
			Optional().
			Comment("The credential badge image (PNG)"),
		field.String("persona").
			Comment("The tutor persona selected for this session"),
	}
}

func (SessionSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
