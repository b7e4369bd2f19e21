package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"peersupport/models"
)

// sessionKey is the single row name used for the persisted session snapshot.
const sessionKey = "auth-storage"

// SessionDB persists the session snapshot in the local database. It
// implements store.SessionPersister.
type SessionDB struct {
	db *sql.DB
}

// NewSessionDB creates a session persister backed by db.
func NewSessionDB(db *sql.DB) *SessionDB {
	return &SessionDB{db: db}
}

// SaveSession writes the snapshot, overwriting any previous one.
func (s *SessionDB) SaveSession(snap models.SessionSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal session snapshot: %w", err)
	}

	query := `INSERT OR REPLACE INTO session (name, snapshot, updated_at) VALUES (?, ?, ?)`
	if _, err := s.db.Exec(query, sessionKey, string(data), time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to write session snapshot: %w", err)
	}
	return nil
}

// LoadSession reads the persisted snapshot. A missing row yields (nil, nil).
func (s *SessionDB) LoadSession() (*models.SessionSnapshot, error) {
	var raw string
	query := `SELECT snapshot FROM session WHERE name = ?`
	err := s.db.QueryRow(query, sessionKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}

	var snap models.SessionSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("failed to decode session snapshot: %w", err)
	}
	return &snap, nil
}

// DeleteSession removes the persisted snapshot. Deleting an absent snapshot
// is not an error.
func (s *SessionDB) DeleteSession() error {
	query := `DELETE FROM session WHERE name = ?`
	if _, err := s.db.Exec(query, sessionKey); err != nil {
		return fmt.Errorf("failed to delete session snapshot: %w", err)
	}
	return nil
}
