package memory

import (
	"context"
	"sync"

	"github.com/PreranaYekkele/CalmBot/internal/domain"
)

// ActivityStore keeps activity events in memory, grouped by session.
type ActivityStore struct {
	mu         sync.RWMutex
	activities map[domain.SessionID][]*domain.Activity
}

func NewActivityStore() *ActivityStore {
	return &ActivityStore{
		activities: make(map[domain.SessionID][]*domain.Activity),
	}
}

func (s *ActivityStore) RecordActivity(_ context.Context, a *domain.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities[a.SessionID] = append(s.activities[a.SessionID], a)
	return nil
}

func (s *ActivityStore) CountByType(_ context.Context, t domain.ActivityType) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, list := range s.activities {
		for _, a := range list {
			if a.Type == t {
				count++
			}
		}
	}
	return count, nil
}
