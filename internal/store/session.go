package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/certforge/certforge/ent"
	"github.com/certforge/certforge/ent/sessionsnapshot"
	"github.com/certforge/certforge/internal/certification"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Save(ctx context.Context, session *Session) error {
	certMap, err := certificationToMap(session.Certification)
	if err != nil {
		return fmt.Errorf("marshal certification: %w", err)
	}

	// Single-session semantics: replace whatever is there.
	if _, err := r.client.SessionSnapshot.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear previous session: %w", err)
	}

	create := r.client.SessionSnapshot.Create().
		SetCertification(certMap).
		SetPersona(string(session.Persona))
	if !session.Timestamp.IsZero() {
		create.SetTimestamp(session.Timestamp)
	}
	if len(session.Badge) > 0 {
		create.SetBadge(session.Badge)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Load(ctx context.Context) (*Session, error) {
	snap, err := r.client.SessionSnapshot.Query().
		Order(ent.Desc(sessionsnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}

	cert, err := certificationFromMap(snap.Certification)
	if err != nil {
		// Unreadable stored data means there is nothing to resume.
		return nil, nil
	}

	return &Session{
		ID:            snap.ID,
		Timestamp:     snap.Timestamp,
		Certification: *cert,
		Badge:         snap.Badge,
		Persona:       certification.TutorPersona(snap.Persona),
	}, nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	if _, err := r.client.SessionSnapshot.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// certificationToMap converts a certification to map[string]any for ent
// JSON storage.
func certificationToMap(cert certification.Certification) (map[string]any, error) {
	b, err := json.Marshal(cert)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// certificationFromMap converts stored JSON back to a certification.
func certificationFromMap(m map[string]any) (*certification.Certification, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var cert certification.Certification
	if err := json.Unmarshal(b, &cert); err != nil {
		return nil, err
	}
	if cert.Title == "" {
		return nil, fmt.Errorf("stored certification has no title")
	}
	return &cert, nil
}
