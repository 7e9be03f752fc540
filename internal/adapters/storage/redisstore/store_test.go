package redisstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/PreranaYekkele/CalmBot/internal/adapters/storage/redisstore"
	"github.com/PreranaYekkele/CalmBot/internal/domain"
)

func newTestStore(t *testing.T) (*redisstore.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	store, err := redisstore.NewStore(client, redisstore.WithTTL(time.Hour))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store, mr
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := &domain.Session{
		ID:           "s1",
		MessageCount: 1,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	if err := store.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	got, err := store.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.ID != "s1" || got.MessageCount != 1 {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	got.MessageCount = 2
	got.Turns = append(got.Turns, domain.Turn{
		Input: "I feel anxious", Emotion: domain.EmotionAnxiety, Response: "reply",
	})
	if err := store.UpdateSession(ctx, got); err != nil {
		t.Fatalf("UpdateSession failed: %v", err)
	}

	reread, err := store.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession after update failed: %v", err)
	}
	if reread.MessageCount != 2 || len(reread.Turns) != 1 {
		t.Fatalf("update not persisted: %+v", reread)
	}
	if reread.Turns[0].Emotion != domain.EmotionAnxiety {
		t.Fatalf("turn emotion lost: %+v", reread.Turns[0])
	}
}

func TestStoreSentinelErrors(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := store.GetSession(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := store.UpdateSession(ctx, &domain.Session{ID: "missing"}); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on update, got %v", err)
	}

	sess := &domain.Session{ID: "s1", MessageCount: 1}
	if err := store.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if err := store.CreateSession(ctx, sess); !errors.Is(err, domain.ErrSessionExists) {
		t.Fatalf("expected ErrSessionExists, got %v", err)
	}
}

func TestStoreSetsTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.CreateSession(ctx, &domain.Session{ID: "s1", MessageCount: 1}); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if ttl := mr.TTL("calmbot:session:s1"); ttl <= 0 || ttl > time.Hour {
		t.Fatalf("unexpected ttl %v", ttl)
	}

	// A read refreshes the TTL.
	mr.FastForward(30 * time.Minute)
	if _, err := store.GetSession(ctx, "s1"); err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if ttl := mr.TTL("calmbot:session:s1"); ttl < 50*time.Minute {
		t.Fatalf("ttl not refreshed on read: %v", ttl)
	}
}

func TestNewStoreRejectsNilClient(t *testing.T) {
	if _, err := redisstore.NewStore(nil); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
