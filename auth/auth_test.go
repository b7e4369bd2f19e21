package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peersupport/auth"
	"peersupport/models"
	"peersupport/query"
	"peersupport/store"
)

type fakeAuthAPI struct {
	resp *models.AuthResponse
	err  error

	lastLogin    *models.LoginCredentials
	lastRegister *models.RegisterCredentials
}

func (f *fakeAuthAPI) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	f.lastLogin = &creds
	return f.resp, f.err
}

func (f *fakeAuthAPI) Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResponse, error) {
	f.lastRegister = &creds
	return f.resp, f.err
}

func newService(apiClient *fakeAuthAPI) (*auth.Service, *store.SessionStore, *store.ForumStore, *query.Cache) {
	cache := query.NewCache(0)
	session := store.NewSessionStore(nil)
	forums := store.NewForumStore(cache)
	return auth.NewService(apiClient, session, forums, cache), session, forums, cache
}

func TestLoginPopulatesSession(t *testing.T) {
	apiClient := &fakeAuthAPI{resp: &models.AuthResponse{Message: "ok", UserID: 42}}
	svc, session, _, _ := newService(apiClient)

	resp, err := svc.Login(context.Background(), "amira@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.UserID)

	assert.True(t, session.IsAuthenticated())
	require.NotNil(t, session.User())
	assert.Equal(t, int64(42), session.User().ID)
	assert.Equal(t, "amira@example.com", session.User().Email)
	assert.False(t, session.IsLoading(), "loading flag cleared after the call")
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	apiClient := &fakeAuthAPI{err: errors.New("invalid credentials")}
	svc, session, _, _ := newService(apiClient)

	_, err := svc.Login(context.Background(), "amira@example.com", "wrong")
	require.Error(t, err)
	assert.False(t, session.IsAuthenticated())
	assert.Nil(t, session.User())
}

func TestLoginRequiresCredentials(t *testing.T) {
	apiClient := &fakeAuthAPI{}
	svc, _, _, _ := newService(apiClient)

	_, err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)
	_, err = svc.Login(context.Background(), "a@b.c", "")
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)
	assert.Nil(t, apiClient.lastLogin, "no request without credentials")
}

func TestRegisterKeepsEmotionKeywords(t *testing.T) {
	apiClient := &fakeAuthAPI{resp: &models.AuthResponse{UserID: 8}}
	svc, session, _, _ := newService(apiClient)

	_, err := svc.Register(context.Background(), "new@example.com", "pw", []string{"Anxious", "Tired"})
	require.NoError(t, err)

	require.NotNil(t, session.User())
	assert.Equal(t, []string{"Anxious", "Tired"}, session.User().EmotionsKw)
	require.NotNil(t, apiClient.lastRegister)
	assert.Equal(t, []string{"Anxious", "Tired"}, apiClient.lastRegister.EmotionsKw)
}

func TestLogoutClearsEverything(t *testing.T) {
	apiClient := &fakeAuthAPI{resp: &models.AuthResponse{UserID: 5}}
	svc, session, forums, cache := newService(apiClient)

	_, err := svc.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	forums.SetPosts([]models.ForumPost{{ID: 1}})

	fetches := 0
	_, err = query.Fetch(context.Background(), cache, "forums", func(ctx context.Context) (int, error) {
		fetches++
		return fetches, nil
	})
	require.NoError(t, err)

	svc.Logout()

	assert.False(t, session.IsAuthenticated())
	assert.Empty(t, forums.Posts())

	_, err = query.Fetch(context.Background(), cache, "forums", func(ctx context.Context) (int, error) {
		fetches++
		return fetches, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, fetches, "cached queries dropped on logout")
}
