package store

import (
	"sync"

	"peersupport/models"
	"peersupport/utils"
)

// SessionPersister stores the session snapshot across restarts. Only the
// user and the authenticated flag are persisted; loading and hydration
// flags are transient.
type SessionPersister interface {
	SaveSession(snap models.SessionSnapshot) error
	LoadSession() (*models.SessionSnapshot, error)
	DeleteSession() error
}

// SessionStore holds the authenticated user identity. It is an explicit
// injected instance so tests can construct isolated stores.
type SessionStore struct {
	mu              sync.Mutex
	user            *models.User
	isAuthenticated bool
	isLoading       bool
	isHydrated      bool
	persister       SessionPersister
}

// NewSessionStore creates an empty session store. persister may be nil, in
// which case the session lives only in memory.
func NewSessionStore(persister SessionPersister) *SessionStore {
	return &SessionStore{persister: persister}
}

// Hydrate loads the persisted snapshot. Any failure is treated as an absent
// session rather than an error. The store is marked hydrated either way.
func (s *SessionStore) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.persister != nil {
		snap, err := s.persister.LoadSession()
		if err != nil {
			utils.Warn("session", "hydrate", "could not load persisted session, starting signed out")
		} else if snap != nil {
			s.user = snap.User
			s.isAuthenticated = snap.User != nil
		}
	}
	s.isHydrated = true
}

// SetUser sets the current user and derives the authenticated flag. The
// snapshot is written through to the persister.
func (s *SessionStore) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	s.isAuthenticated = user != nil

	if s.persister != nil {
		snap := models.SessionSnapshot{User: user, IsAuthenticated: s.isAuthenticated}
		if err := s.persister.SaveSession(snap); err != nil {
			utils.Error("session", "persist", "could not persist session snapshot: "+err.Error())
		}
	}
}

// Logout restores the initial empty state and removes the persisted
// snapshot.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.isAuthenticated = false
	s.isLoading = false
	s.isHydrated = false

	if s.persister != nil {
		if err := s.persister.DeleteSession(); err != nil {
			utils.Error("session", "logout", "could not remove persisted session: "+err.Error())
		}
	}
}

// SetLoading marks whether an auth operation is in flight.
func (s *SessionStore) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = loading
}

// SetHydrated marks whether the persisted snapshot has been loaded.
func (s *SessionStore) SetHydrated(hydrated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isHydrated = hydrated
}

// User returns the current user, nil when signed out.
func (s *SessionStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether a user is signed in. True iff User() is
// non-nil.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAuthenticated
}

// IsLoading reports whether an auth operation is in flight.
func (s *SessionStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// IsHydrated reports whether the persisted snapshot has been loaded.
func (s *SessionStore) IsHydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isHydrated
}
