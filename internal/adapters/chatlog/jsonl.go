package chatlog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/PreranaYekkele/CalmBot/internal/domain"
)

// FileStore appends interaction records as one JSON object per line to
// a daily file, chat_log_YYYYMMDD.json, under dir.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates dir if needed and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) AppendInteraction(_ context.Context, rec *domain.Interaction) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding interaction: %w", err)
	}

	name := fmt.Sprintf("chat_log_%s.json", rec.Timestamp.Format("20060102"))
	path := filepath.Join(s.dir, name)

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening chat log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("writing chat log: %w", err)
	}
	return nil
}
