package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/PreranaYekkele/CalmBot/internal/adapters/storage/sqlite"
	"github.com/PreranaYekkele/CalmBot/internal/domain"
)

func newTestStore(t *testing.T) *sqlite.ActivityStore {
	t.Helper()

	store, err := sqlite.OpenActivityStore(filepath.Join(t.TempDir(), "calmbot.db"))
	if err != nil {
		t.Fatalf("OpenActivityStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndCount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	events := []struct {
		session domain.SessionID
		typ     domain.ActivityType
	}{
		{"s1", domain.ActivityBreathing},
		{"s1", domain.ActivityGratitude},
		{"s2", domain.ActivityBreathing},
	}
	for _, ev := range events {
		err := store.RecordActivity(ctx, &domain.Activity{
			SessionID: ev.session,
			Type:      ev.typ,
			Timestamp: time.Now(),
		})
		if err != nil {
			t.Fatalf("RecordActivity failed: %v", err)
		}
	}

	cases := []struct {
		typ  domain.ActivityType
		want int
	}{
		{domain.ActivityBreathing, 2},
		{domain.ActivityGratitude, 1},
		{domain.ActivityMood, 0},
	}
	for _, tc := range cases {
		got, err := store.CountByType(ctx, tc.typ)
		if err != nil {
			t.Fatalf("CountByType(%s) failed: %v", tc.typ, err)
		}
		if got != tc.want {
			t.Errorf("CountByType(%s) = %d, want %d", tc.typ, got, tc.want)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calmbot.db")
	ctx := context.Background()

	store, err := sqlite.OpenActivityStore(path)
	if err != nil {
		t.Fatalf("OpenActivityStore failed: %v", err)
	}
	err = store.RecordActivity(ctx, &domain.Activity{
		SessionID: "s1", Type: domain.ActivityMood, Timestamp: time.Now(),
	})
	if err != nil {
		t.Fatalf("RecordActivity failed: %v", err)
	}
	store.Close()

	reopened, err := sqlite.OpenActivityStore(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	count, err := reopened.CountByType(ctx, domain.ActivityMood)
	if err != nil {
		t.Fatalf("CountByType failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count after reopen = %d, want 1", count)
	}
}
