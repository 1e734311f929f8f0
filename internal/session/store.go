package session

import (
	"database/sql"
	"fmt"
	"time"
)

// SQLiteStore implements [TokenStore] on the local SQLite database. A single
// row keyed by id=1 holds the most recent token.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore and ensures its schema exists.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	query := `
		CREATE TABLE IF NOT EXISTS session_tokens (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL,
			saved_at TIMESTAMP NOT NULL
		)
	`

	if _, err := db.Exec(query); err != nil {
		return nil, fmt.Errorf("failed to create session schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save upserts the token into the single session row.
func (s *SQLiteStore) Save(token string) error {
	if token == "" {
		return fmt.Errorf("refusing to save an empty token")
	}

	query := `
		INSERT INTO session_tokens (id, token, saved_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at
	`

	if _, err := s.db.Exec(query, token, time.Now()); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}

// Load retrieves the persisted token. A nil result with nil error means no
// token has been saved.
func (s *SQLiteStore) Load() (*StoredToken, error) {
	query := `SELECT token, saved_at FROM session_tokens WHERE id = 1`

	var (
		token   string
		savedAt time.Time
	)

	err := s.db.QueryRow(query).Scan(&token, &savedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	return &StoredToken{Token: token, SavedAt: savedAt}, nil
}

// Delete removes the persisted token. Deleting an absent token is not an
// error.
func (s *SQLiteStore) Delete() error {
	if _, err := s.db.Exec(`DELETE FROM session_tokens WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
