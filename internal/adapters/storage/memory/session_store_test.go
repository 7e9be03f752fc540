package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PreranaYekkele/CalmBot/internal/adapters/storage/memory"
	"github.com/PreranaYekkele/CalmBot/internal/domain"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	if _, err := store.GetSession(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	sess := &domain.Session{ID: "s1", MessageCount: 1, CreatedAt: time.Now()}
	if err := store.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if err := store.CreateSession(ctx, sess); !errors.Is(err, domain.ErrSessionExists) {
		t.Fatalf("expected ErrSessionExists, got %v", err)
	}

	got, err := store.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.MessageCount != 1 {
		t.Fatalf("message count = %d, want 1", got.MessageCount)
	}

	got.MessageCount = 2
	got.Turns = append(got.Turns, domain.Turn{Input: "hi", Emotion: domain.EmotionGeneral})
	if err := store.UpdateSession(ctx, got); err != nil {
		t.Fatalf("UpdateSession failed: %v", err)
	}

	reread, _ := store.GetSession(ctx, "s1")
	if reread.MessageCount != 2 || len(reread.Turns) != 1 {
		t.Fatalf("update not visible: %+v", reread)
	}

	if err := store.UpdateSession(ctx, &domain.Session{ID: "missing"}); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	if store.Len() != 1 {
		t.Fatalf("Len = %d, want 1", store.Len())
	}
}

func TestActivityStoreCounts(t *testing.T) {
	store := memory.NewActivityStore()
	ctx := context.Background()

	events := []domain.ActivityType{
		domain.ActivityBreathing,
		domain.ActivityBreathing,
		domain.ActivityMood,
	}
	for _, typ := range events {
		err := store.RecordActivity(ctx, &domain.Activity{
			SessionID: "s1", Type: typ, Timestamp: time.Now(),
		})
		if err != nil {
			t.Fatalf("RecordActivity failed: %v", err)
		}
	}

	breathing, _ := store.CountByType(ctx, domain.ActivityBreathing)
	mood, _ := store.CountByType(ctx, domain.ActivityMood)
	gratitude, _ := store.CountByType(ctx, domain.ActivityGratitude)

	if breathing != 2 || mood != 1 || gratitude != 0 {
		t.Fatalf("counts = %d/%d/%d, want 2/1/0", breathing, mood, gratitude)
	}
}

func TestInteractionStoreSnapshot(t *testing.T) {
	store := memory.NewInteractionStore()
	ctx := context.Background()

	store.AppendInteraction(ctx, &domain.Interaction{SessionID: "s1", Input: "a"})
	store.AppendInteraction(ctx, &domain.Interaction{SessionID: "s1", Input: "b"})

	recs := store.Records()
	if len(recs) != 2 || recs[0].Input != "a" || recs[1].Input != "b" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}
