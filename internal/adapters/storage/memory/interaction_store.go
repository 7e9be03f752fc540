package memory

import (
	"context"
	"sync"

	"github.com/PreranaYekkele/CalmBot/internal/domain"
)

// InteractionStore collects interaction records in memory. Mostly a
// test double for the file-backed chat log.
type InteractionStore struct {
	mu      sync.RWMutex
	records []*domain.Interaction
}

func NewInteractionStore() *InteractionStore {
	return &InteractionStore{}
}

func (s *InteractionStore) AppendInteraction(_ context.Context, rec *domain.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	return nil
}

// Records returns a snapshot of everything appended so far.
func (s *InteractionStore) Records() []*domain.Interaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Interaction, len(s.records))
	copy(out, s.records)
	return out
}
