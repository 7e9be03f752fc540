package dialogue

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/PreranaYekkele/CalmBot/internal/domain"
)

// ReferralOffer pairs a referral prompt with a professional contact.
type ReferralOffer struct {
	Message string `yaml:"message"`
	Contact string `yaml:"contact"`
}

// Content is the full response bank: everything the engine can say
// that is not user-derived. Immutable once a Bank is built from it.
type Content struct {
	Greetings []string                    `yaml:"greetings"`
	Responses map[domain.Emotion][]string `yaml:"responses"`
	FollowUps []string                    `yaml:"follow_ups"`
	Referrals []ReferralOffer             `yaml:"referrals"`
	Crisis    string                      `yaml:"crisis"`
}

// Validate checks the invariants the engine relies on: every category
// it may draw from is non-empty, and a general set exists as the
// fallback for unrecognized emotions.
func (c Content) Validate() error {
	if len(c.Greetings) == 0 {
		return fmt.Errorf("%w: bank has no greetings", domain.ErrInvalidConfig)
	}
	if len(c.Responses[domain.EmotionGeneral]) == 0 {
		return fmt.Errorf("%w: bank has no general responses", domain.ErrInvalidConfig)
	}
	for emo, set := range c.Responses {
		if len(set) == 0 {
			return fmt.Errorf("%w: bank has an empty response set for %s", domain.ErrInvalidConfig, emo)
		}
	}
	if len(c.FollowUps) == 0 {
		return fmt.Errorf("%w: bank has no follow-ups", domain.ErrInvalidConfig)
	}
	if len(c.Referrals) == 0 {
		return fmt.Errorf("%w: bank has no referral offers", domain.ErrInvalidConfig)
	}
	if c.Crisis == "" {
		return fmt.Errorf("%w: bank has no crisis response", domain.ErrInvalidConfig)
	}
	return nil
}

// lockedRand guards a seedable rand.Rand for concurrent draws.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// Bank selects responses uniformly at random from its content.
type Bank struct {
	content Content
	rng     *lockedRand
}

// BankOption configures a Bank.
type BankOption func(*Bank)

// WithContent replaces the built-in content.
func WithContent(c Content) BankOption {
	return func(b *Bank) { b.content = c }
}

// WithBankSeed seeds the bank's random source for deterministic tests.
func WithBankSeed(seed int64) BankOption {
	return func(b *Bank) { b.rng = newLockedRand(seed) }
}

// NewBank builds a response bank. Without options it uses the built-in
// content and a time-seeded random source.
func NewBank(opts ...BankOption) (*Bank, error) {
	b := &Bank{
		content: DefaultContent(),
		rng:     newLockedRand(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.content.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bank) pick(set []string) string {
	return set[b.rng.Intn(len(set))]
}

// Greeting draws from the first-contact greeting set.
func (b *Bank) Greeting() string {
	return b.pick(b.content.Greetings)
}

// Response draws from the candidate set for emotion. An emotion with
// no set falls back to the general set; it is never an error.
func (b *Bank) Response(emo domain.Emotion) string {
	set, ok := b.content.Responses[emo]
	if !ok || len(set) == 0 {
		set = b.content.Responses[domain.EmotionGeneral]
	}
	return b.pick(set)
}

// FollowUp draws a clarifying question, independent of emotion.
func (b *Bank) FollowUp() string {
	return b.pick(b.content.FollowUps)
}

// Referral draws a professional-referral offer.
func (b *Bank) Referral() ReferralOffer {
	return b.content.Referrals[b.rng.Intn(len(b.content.Referrals))]
}

// CrisisResponse returns the fixed crisis-resources text.
func (b *Bank) CrisisResponse() string {
	return b.content.Crisis
}
