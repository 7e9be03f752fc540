package domain

// Turn is one completed input/output exchange within a session.
// Immutable once appended to its session's log.
type Turn struct {
	Input     string    `json:"input"`
	Emotion   Emotion   `json:"emotion"`
	Response  string    `json:"response"`
	Timestamp Timestamp `json:"timestamp"`
}

// Session holds the per-session conversational state. The first
// contact for a session id creates it with MessageCount 1 and an empty
// turn log (the greeting is not a Turn); every later message
// increments the count and appends one Turn.
type Session struct {
	ID        SessionID `json:"id"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`

	MessageCount int    `json:"message_count"`
	Turns        []Turn `json:"turns,omitempty"`
}

// Interaction is the record emitted to the interaction logger exactly
// once per respond call. A greeting interaction carries no emotion.
type Interaction struct {
	Timestamp Timestamp `json:"timestamp"`
	SessionID SessionID `json:"session_id"`
	Input     string    `json:"user_input"`
	Emotion   Emotion   `json:"emotion,omitempty"`
	Response  string    `json:"response"`
}

// Activity is one recorded self-care event. Independent of the
// dialogue core; no emotion classification is involved.
type Activity struct {
	SessionID SessionID
	Type      ActivityType
	Timestamp Timestamp
}
