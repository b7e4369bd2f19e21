// Package journal implements private on-device journaling. Entries belong
// to the signed-in user and are stored only in the local database.
package journal

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"peersupport/models"
	"peersupport/store"
)

var (
	// ErrNotAuthenticated is returned when no user is signed in.
	ErrNotAuthenticated = errors.New("please login to continue")
	// ErrEmptyContent is returned when the trimmed entry body is empty.
	ErrEmptyContent = errors.New("journal content cannot be empty")
)

// Colors is the note color palette, in rotation order for new entries.
var Colors = []string{
	"#fff9c4", // yellow
	"#f8bbd0", // pink
	"#e1f5fe", // light blue
	"#d1c4e9", // purple
	"#c8e6c9", // green
	"#ffe0b2", // orange
}

// Store is the persistence surface the service needs.
type Store interface {
	InsertJournal(entry models.Journal) error
	UpdateJournal(entry models.Journal) error
	DeleteJournal(id string) error
	TogglePin(id string) (bool, error)
	ListJournals(userID int64) ([]models.Journal, error)
}

// Service exposes journal operations scoped to the current session.
type Service struct {
	db      Store
	session *store.SessionStore
}

// NewService creates a journal service.
func NewService(db Store, session *store.SessionStore) *Service {
	return &Service{db: db, session: session}
}

func (s *Service) userID() (int64, error) {
	user := s.session.User()
	if user == nil {
		return 0, ErrNotAuthenticated
	}
	return user.ID, nil
}

// Create saves a new entry. An empty color picks the next palette color
// based on how many entries the user already has.
func (s *Service) Create(title, content, humor, color string) (*models.Journal, error) {
	userID, err := s.userID()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	if color == "" {
		existing, err := s.db.ListJournals(userID)
		if err != nil {
			return nil, err
		}
		color = Colors[len(existing)%len(Colors)]
	}

	now := time.Now().Unix()
	entry := models.Journal{
		ID:        uuid.NewString(),
		UserID:    userID,
		Humor:     humor,
		Title:     strings.TrimSpace(title),
		Content:   content,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.InsertJournal(entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update rewrites an entry's editable fields.
func (s *Service) Update(id, title, content, humor, color string) error {
	if _, err := s.userID(); err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return s.db.UpdateJournal(models.Journal{
		ID:        id,
		Humor:     humor,
		Title:     strings.TrimSpace(title),
		Content:   content,
		Color:     color,
		UpdatedAt: time.Now().Unix(),
	})
}

// Delete removes an entry.
func (s *Service) Delete(id string) error {
	if _, err := s.userID(); err != nil {
		return err
	}
	return s.db.DeleteJournal(id)
}

// TogglePin flips an entry's pinned flag and returns the new value.
func (s *Service) TogglePin(id string) (bool, error) {
	if _, err := s.userID(); err != nil {
		return false, err
	}
	return s.db.TogglePin(id)
}

// List returns the user's entries, pinned first, newest first.
func (s *Service) List() ([]models.Journal, error) {
	userID, err := s.userID()
	if err != nil {
		return nil, err
	}
	return s.db.ListJournals(userID)
}
