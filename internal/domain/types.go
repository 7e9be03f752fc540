package domain

import "time"

type SessionID string

// Emotion is the classification label for the affect detected in a
// user message. General is the fallback and is never matched by a
// pattern rule.
type Emotion string

const (
	EmotionAnxiety    Emotion = "anxiety"
	EmotionDepression Emotion = "depression"
	EmotionAnger      Emotion = "anger"
	EmotionGeneral    Emotion = "general"

	// EmotionCrisis marks turns caught by the crisis keyword check.
	// It is not part of the pattern-rule taxonomy and never comes out
	// of a classifier.
	EmotionCrisis Emotion = "crisis"
)

// ActivityType identifies a self-care activity recorded outside the
// dialogue flow.
type ActivityType string

const (
	ActivityBreathing ActivityType = "breathing"
	ActivityMood      ActivityType = "mood"
	ActivityGratitude ActivityType = "gratitude"
)

type Timestamp = time.Time
