package database

import (
	"database/sql"
	"errors"
	"fmt"

	"peersupport/models"
)

// JournalDB stores private journal entries. Journals never leave the device.
type JournalDB struct {
	db *sql.DB
}

// NewJournalDB creates a journal store backed by db.
func NewJournalDB(db *sql.DB) *JournalDB {
	return &JournalDB{db: db}
}

// InsertJournal saves a new journal entry.
func (j *JournalDB) InsertJournal(entry models.Journal) error {
	query := `
    INSERT INTO journals (id, user_id, humor, title, content, is_pinned, color, created_at, updated_at)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := j.db.Exec(query,
		entry.ID,
		entry.UserID,
		entry.Humor,
		entry.Title,
		entry.Content,
		entry.IsPinned,
		entry.Color,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal %s: %w", entry.ID, err)
	}
	return nil
}

// UpdateJournal rewrites an existing entry's editable fields.
func (j *JournalDB) UpdateJournal(entry models.Journal) error {
	query := `
    UPDATE journals SET humor = ?, title = ?, content = ?, color = ?, updated_at = ?
    WHERE id = ?`

	_, err := j.db.Exec(query, entry.Humor, entry.Title, entry.Content, entry.Color, entry.UpdatedAt, entry.ID)
	if err != nil {
		return fmt.Errorf("failed to update journal %s: %w", entry.ID, err)
	}
	return nil
}

// DeleteJournal removes an entry by id.
func (j *JournalDB) DeleteJournal(id string) error {
	if _, err := j.db.Exec(`DELETE FROM journals WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete journal %s: %w", id, err)
	}
	return nil
}

// TogglePin flips an entry's pinned flag and returns the new value.
func (j *JournalDB) TogglePin(id string) (bool, error) {
	var pinned bool
	err := j.db.QueryRow(`SELECT is_pinned FROM journals WHERE id = ?`, id).Scan(&pinned)
	if errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("journal %s not found", id)
	}
	if err != nil {
		return false, fmt.Errorf("failed to read journal %s: %w", id, err)
	}

	if _, err := j.db.Exec(`UPDATE journals SET is_pinned = ? WHERE id = ?`, !pinned, id); err != nil {
		return false, fmt.Errorf("failed to toggle pin on journal %s: %w", id, err)
	}
	return !pinned, nil
}

// ListJournals returns a user's entries, pinned first, newest first within
// each group.
func (j *JournalDB) ListJournals(userID int64) ([]models.Journal, error) {
	query := `
    SELECT id, user_id, humor, title, content, is_pinned, color, created_at, updated_at
    FROM journals WHERE user_id = ?
    ORDER BY is_pinned DESC, created_at DESC`

	rows, err := j.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	var entries []models.Journal
	for rows.Next() {
		var entry models.Journal
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Humor,
			&entry.Title,
			&entry.Content,
			&entry.IsPinned,
			&entry.Color,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
