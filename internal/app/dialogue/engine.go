package dialogue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PreranaYekkele/CalmBot/internal/domain"
	"github.com/PreranaYekkele/CalmBot/internal/observability"
)

// Policy holds the escalation knobs. The probabilities gate
// independent random draws; both, either or neither can fire on a
// given turn.
type Policy struct {
	// FollowUpProbability is the chance a clarifying question is
	// appended to the base response.
	FollowUpProbability float64

	// ReferralProbability gates the professional-referral suggestion
	// while MessageCount is inside [ReferralMinMessages,
	// ReferralMaxMessages].
	ReferralProbability float64
	ReferralMinMessages int
	ReferralMaxMessages int
}

// DefaultPolicy matches the observed production behavior.
func DefaultPolicy() Policy {
	return Policy{
		FollowUpProbability: 0.5,
		ReferralProbability: 0.3,
		ReferralMinMessages: 6,
		ReferralMaxMessages: 8,
	}
}

// Engine orchestrates one respond call: session lookup, emotion
// classification, response selection, escalation, turn recording and
// interaction emission.
type Engine struct {
	classifier   domain.EmotionClassifier
	crisis       domain.CrisisDetector
	bank         *Bank
	sessions     domain.SessionStore
	interactions domain.InteractionStore

	policy Policy
	rng    *lockedRand
	now    func() time.Time
	locks  sessionLocks
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy overrides the default escalation policy.
func WithPolicy(p Policy) Option {
	return func(e *Engine) { e.policy = p }
}

// WithSeed seeds the engine's gate draws for deterministic tests.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = newLockedRand(seed) }
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithCrisisDetector sets the crisis short-circuit. Nil disables it.
func WithCrisisDetector(d domain.CrisisDetector) Option {
	return func(e *Engine) { e.crisis = d }
}

func NewEngine(
	classifier domain.EmotionClassifier,
	bank *Bank,
	sessions domain.SessionStore,
	interactions domain.InteractionStore,
	opts ...Option,
) *Engine {
	e := &Engine{
		classifier:   classifier,
		bank:         bank,
		sessions:     sessions,
		interactions: interactions,
		policy:       DefaultPolicy(),
		rng:          newLockedRand(time.Now().UnixNano()),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Respond processes one user message for a session and returns the
// reply text. The first-ever message for a session id returns a
// greeting without classification; later messages run the full flow.
// The caller validates that sessionID and message are present; the
// engine assumes valid strings.
func (e *Engine) Respond(ctx context.Context, sessionID domain.SessionID, message string) (string, error) {
	unlock := e.locks.lock(sessionID)
	defer unlock()

	now := e.now()
	log := observability.LoggerFromContext(ctx).With("session_id", sessionID)

	sess, err := e.sessions.GetSession(ctx, sessionID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return e.greet(ctx, sessionID, message, now)
	case err != nil:
		log.Error("failed to load session", "error", err)
		return "", err
	}

	sess.MessageCount++

	emo, response := e.compose(ctx, sess, message)

	sess.Turns = append(sess.Turns, domain.Turn{
		Input:     message,
		Emotion:   emo,
		Response:  response,
		Timestamp: now,
	})
	sess.UpdatedAt = now

	if err := e.sessions.UpdateSession(ctx, sess); err != nil {
		log.Error("failed to update session", "error", err)
		return "", err
	}

	e.emit(ctx, &domain.Interaction{
		Timestamp: now,
		SessionID: sessionID,
		Input:     message,
		Emotion:   emo,
		Response:  response,
	})

	log.Info("responded", "emotion", emo, "message_count", sess.MessageCount)
	return response, nil
}

// greet handles first contact: create the session with count 1,
// append no turn, skip classification entirely.
func (e *Engine) greet(ctx context.Context, sessionID domain.SessionID, message string, now time.Time) (string, error) {
	log := observability.LoggerFromContext(ctx).With("session_id", sessionID)

	sess := &domain.Session{
		ID:           sessionID,
		CreatedAt:    now,
		UpdatedAt:    now,
		MessageCount: 1,
	}
	if err := e.sessions.CreateSession(ctx, sess); err != nil {
		log.Error("failed to create session", "error", err)
		return "", err
	}

	greeting := e.bank.Greeting()

	e.emit(ctx, &domain.Interaction{
		Timestamp: now,
		SessionID: sessionID,
		Input:     message,
		Response:  greeting,
	})

	log.Info("session started")
	return greeting, nil
}

// compose classifies the message and builds the reply text, layering
// the follow-up and referral escalations. A crisis match bypasses all
// of that and returns the fixed resources text.
func (e *Engine) compose(ctx context.Context, sess *domain.Session, message string) (domain.Emotion, string) {
	if e.crisis != nil && e.crisis.InCrisis(message) {
		return domain.EmotionCrisis, e.bank.CrisisResponse()
	}

	emo, err := e.classifier.Classify(ctx, message)
	if err != nil {
		// Classification is best-effort: degrade to the general set.
		observability.LoggerFromContext(ctx).Warn("classifier failed, using general",
			"session_id", sess.ID, "error", err)
		emo = domain.EmotionGeneral
	}

	response := e.bank.Response(emo)

	if e.rng.Float64() < e.policy.FollowUpProbability {
		response = response + " " + e.bank.FollowUp()
	}

	inWindow := sess.MessageCount >= e.policy.ReferralMinMessages &&
		sess.MessageCount <= e.policy.ReferralMaxMessages
	if inWindow && e.rng.Float64() < e.policy.ReferralProbability {
		ref := e.bank.Referral()
		response = fmt.Sprintf("%s\n\n%s\n%s", response, ref.Message, ref.Contact)
	}

	return emo, response
}

// emit hands the interaction record to the logger. Persistence is
// best-effort relative to the conversational contract: a failure is
// reported and the response returned unchanged.
func (e *Engine) emit(ctx context.Context, rec *domain.Interaction) {
	if e.interactions == nil {
		return
	}
	if err := e.interactions.AppendInteraction(ctx, rec); err != nil {
		observability.LoggerFromContext(ctx).Error("failed to record interaction",
			"session_id", rec.SessionID, "error", err)
	}
}
