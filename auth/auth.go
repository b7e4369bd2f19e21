// Package auth wires the authentication endpoints to the session store:
// the store is populated on the success path of login and registration,
// not by the caller.
package auth

import (
	"context"
	"errors"
	"strings"

	"peersupport/models"
	"peersupport/query"
	"peersupport/store"
	"peersupport/utils"
)

// ErrMissingCredentials is returned when email or password is blank.
var ErrMissingCredentials = errors.New("email and password are required")

// API is the part of the HTTP client the service uses.
type API interface {
	Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error)
	Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResponse, error)
}

// Service drives login, registration, and logout.
type Service struct {
	api     API
	session *store.SessionStore
	forums  *store.ForumStore
	cache   *query.Cache
}

// NewService creates an auth service.
func NewService(apiClient API, session *store.SessionStore, forums *store.ForumStore, cache *query.Cache) *Service {
	return &Service{api: apiClient, session: session, forums: forums, cache: cache}
}

// Login authenticates and populates the session store on success.
func (s *Service) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	s.session.SetLoading(true)
	defer s.session.SetLoading(false)

	resp, err := s.api.Login(ctx, models.LoginCredentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	s.session.SetUser(&models.User{ID: resp.UserID, Email: email})
	utils.Info("auth", "login", "signed in as "+email)
	return resp, nil
}

// Register creates an account and populates the session store on success,
// keeping the chosen emotion keywords on the user.
func (s *Service) Register(ctx context.Context, email, password string, emotions []string) (*models.AuthResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	s.session.SetLoading(true)
	defer s.session.SetLoading(false)

	resp, err := s.api.Register(ctx, models.RegisterCredentials{
		Email:      email,
		Password:   password,
		EmotionsKw: emotions,
	})
	if err != nil {
		return nil, err
	}

	s.session.SetUser(&models.User{ID: resp.UserID, Email: email, EmotionsKw: emotions})
	utils.Info("auth", "register", "registered "+email)
	return resp, nil
}

// Logout resets the session, the forum cache, and every cached query.
func (s *Service) Logout() {
	s.session.Logout()
	s.forums.Reset()
	s.cache.Clear()
	utils.Info("auth", "logout", "signed out")
}
