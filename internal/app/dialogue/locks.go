package dialogue

import (
	"sync"

	"github.com/PreranaYekkele/CalmBot/internal/domain"
)

// sessionLocks serializes the read-increment-append sequence per
// session id while leaving unrelated sessions uncontended. Entries
// live as long as the session registry itself; neither is evicted by
// the core.
type sessionLocks struct {
	locks sync.Map // domain.SessionID -> *sync.Mutex
}

func (l *sessionLocks) lock(id domain.SessionID) (unlock func()) {
	v, _ := l.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
