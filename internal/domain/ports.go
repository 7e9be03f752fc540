package domain

import "context"

// EmotionClassifier maps free text to one emotion label. The
// rule-based implementation is the default; a model-backed variant can
// plug in behind the same interface. Implementations must return
// EmotionGeneral (not an error) when nothing matches.
type EmotionClassifier interface {
	Classify(ctx context.Context, text string) (Emotion, error)
}

// CrisisDetector reports whether a message should short-circuit the
// normal response flow and surface crisis resources instead.
type CrisisDetector interface {
	InCrisis(text string) bool
}

// SessionStore defines session registry persistence.
type SessionStore interface {
	// CreateSession stores a new session. Returns ErrSessionExists if
	// the id is already present.
	CreateSession(ctx context.Context, session *Session) error

	// GetSession returns the session for id, or ErrSessionNotFound.
	GetSession(ctx context.Context, id SessionID) (*Session, error)

	// UpdateSession replaces an existing session. Returns
	// ErrSessionNotFound if the id is absent.
	UpdateSession(ctx context.Context, session *Session) error
}

// InteractionStore durably records one interaction per respond call.
// It is a side-effect sink only; failures must never alter the
// response returned to the user.
type InteractionStore interface {
	AppendInteraction(ctx context.Context, rec *Interaction) error
}

// ActivityStore records self-care activity events and serves the
// aggregate counts behind /api/stats.
type ActivityStore interface {
	RecordActivity(ctx context.Context, a *Activity) error
	CountByType(ctx context.Context, t ActivityType) (int, error)
}
