package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/PreranaYekkele/CalmBot/internal/domain"
)

// ActivityStore persists self-care activity events to a SQLite file.
type ActivityStore struct {
	db *sql.DB
}

// OpenActivityStore opens (creating if needed) the activity database
// at path.
func OpenActivityStore(path string) (*ActivityStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	store := &ActivityStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *ActivityStore) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS user_activity (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id    TEXT NOT NULL,
	activity_type TEXT NOT NULL,
	timestamp     TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_user_activity_type ON user_activity(activity_type);`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

func (s *ActivityStore) RecordActivity(ctx context.Context, a *domain.Activity) error {
	const q = `INSERT INTO user_activity (session_id, activity_type, timestamp) VALUES (?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, q, string(a.SessionID), string(a.Type), a.Timestamp); err != nil {
		return fmt.Errorf("recording activity: %w", err)
	}
	return nil
}

func (s *ActivityStore) CountByType(ctx context.Context, t domain.ActivityType) (int, error) {
	const q = `SELECT COUNT(*) FROM user_activity WHERE activity_type = ?`

	var count int
	if err := s.db.QueryRowContext(ctx, q, string(t)).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting activities: %w", err)
	}
	return count, nil
}

// Close closes the underlying database.
func (s *ActivityStore) Close() error {
	return s.db.Close()
}
