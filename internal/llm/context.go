package llm

import "context"

// Request attribution travels on the context so the logging decorator
// can label each API call without widening the Provider interface.
type tagKey int

const (
	purposeTag tagKey = iota
	sessionTag
)

// WithPurpose labels ctx with what the generation is for, e.g.
// "socratic-turn" or "opening-question".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeTag, purpose)
}

// PurposeFrom returns the purpose label, or "unknown" for an
// untagged context.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeTag).(string); ok {
		return p
	}
	return "unknown"
}

// WithSession labels ctx with the tutoring session the generation
// belongs to.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionTag, sessionID)
}

// SessionFrom returns the session label, or "" when the generation
// happened outside a session.
func SessionFrom(ctx context.Context) string {
	if id, ok := ctx.Value(sessionTag).(string); ok {
		return id
	}
	return ""
}
