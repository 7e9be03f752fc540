package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PreranaYekkele/CalmBot/internal/domain"
)

const keyPrefix = "calmbot:session:"

// Store persists sessions as JSON values in Redis with a TTL, so an
// operator gets idle-session eviction for free. Lost updates are
// prevented by the engine's per-session locks, so values are written
// last-writer-wins.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the session key TTL. Zero keeps the default of 24h.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewStore wraps an existing Redis client.
func NewStore(client *redis.Client, opts ...Option) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: redis client is nil", domain.ErrInvalidConfig)
	}
	s := &Store{
		client: client,
		ttl:    24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func sessionKey(id domain.SessionID) string {
	return keyPrefix + string(id)
}

func (s *Store) CreateSession(ctx context.Context, session *domain.Session) error {
	val, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	ok, err := s.client.SetNX(ctx, sessionKey(session.ID), val, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	if !ok {
		return domain.ErrSessionExists
	}
	return nil
}

func (s *Store) GetSession(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	key := sessionKey(id)

	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}

	// Refresh TTL on read
	_ = s.client.Expire(ctx, key, s.ttl).Err()

	return &session, nil
}

func (s *Store) UpdateSession(ctx context.Context, session *domain.Session) error {
	val, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	// SetXX writes only if the key still exists.
	ok, err := s.client.SetXX(ctx, sessionKey(session.ID), val, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	if !ok {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
