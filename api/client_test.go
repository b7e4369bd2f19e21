package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peersupport/api"
	"peersupport/models"
)

func TestLoginDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds models.LoginCredentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "amira@example.com", creds.Email)

		json.NewEncoder(w).Encode(models.AuthResponse{Message: "ok", UserID: 42})
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, time.Second)
	resp, err := c.Login(context.Background(), models.LoginCredentials{Email: "amira@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.UserID)
}

func TestServerErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, time.Second)
	_, err := c.Login(context.Background(), models.LoginCredentials{Email: "a@b.c", Password: "wrong"})
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	assert.False(t, api.IsTransport(err))
}

func TestServerErrorWithoutMessageUsesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, time.Second)
	_, err := c.ListForums(context.Background())
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Internal Server Error", apiErr.Message)
}

func TestIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "no matching volunteers"})
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, time.Second)
	_, err := c.VolunteersByEmotions(context.Background(), 7)
	assert.True(t, api.IsNotFound(err))
}

func TestTransportFailure(t *testing.T) {
	// A server that is already closed never responds.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := api.NewClient(srv.URL, time.Second)
	_, err := c.ListForums(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsTransport(err))
	assert.False(t, api.IsNotFound(err))
}

func TestDeletePostSendsUserID(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, time.Second)
	require.NoError(t, c.DeletePost(context.Background(), 12, 7))
	assert.Equal(t, "user_id=7", gotQuery)
}

func TestPaginatedVolunteersQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volunteers/paginated", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("page_size"))
		json.NewEncoder(w).Encode(models.VolunteerPage{Page: 2, HasNext: false})
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, time.Second)
	page, err := c.PaginatedVolunteers(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.False(t, page.HasNext)
}
