package volunteers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peersupport/api"
	"peersupport/models"
	"peersupport/volunteers"
)

// fakeSource records which endpoints the feed hits.
type fakeSource struct {
	matched        []models.Volunteer
	available      []models.Volunteer
	matchedErr     error
	availableCalls int
	matchedCalls   int
}

func (f *fakeSource) AvailableVolunteers(ctx context.Context) ([]models.Volunteer, error) {
	f.availableCalls++
	return f.available, nil
}

func (f *fakeSource) VolunteersByEmotions(ctx context.Context, userID int64) ([]models.Volunteer, error) {
	f.matchedCalls++
	if f.matchedErr != nil {
		return nil, f.matchedErr
	}
	return f.matched, nil
}

func makeVolunteers(n int) []models.Volunteer {
	out := make([]models.Volunteer, n)
	for i := range out {
		out[i] = models.Volunteer{ID: int64(i + 1), Email: fmt.Sprintf("v%d@example.com", i+1)}
	}
	return out
}

func ids(list []models.Volunteer) []int64 {
	out := make([]int64, len(list))
	for i, v := range list {
		out[i] = v.ID
	}
	return out
}

func userID(id int64) *int64 { return &id }

func TestPagesAppendInOrderAndTerminate(t *testing.T) {
	src := &fakeSource{matched: makeVolunteers(5)}
	feed := volunteers.NewEmotionFeed(src, userID(1), 2)

	page, err := feed.FetchNext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(page))
	assert.True(t, feed.HasMore())

	page, err = feed.FetchNext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4}, ids(page))

	page, err = feed.FetchNext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, ids(page))
	assert.False(t, feed.HasMore(), "short page is the terminal page")

	// After the terminal page no further request is issued.
	page, err = feed.FetchNext(context.Background())
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Equal(t, 1, src.matchedCalls, "source list fetched exactly once")

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(feed.Items()), "no page fetched twice, order preserved")
}

func TestExactPageBoundaryTerminates(t *testing.T) {
	src := &fakeSource{matched: makeVolunteers(4)}
	feed := volunteers.NewEmotionFeed(src, userID(1), 2)

	_, err := feed.FetchNext(context.Background())
	require.NoError(t, err)
	assert.True(t, feed.HasMore())

	_, err = feed.FetchNext(context.Background())
	require.NoError(t, err)
	assert.False(t, feed.HasMore())
}

func TestFallbackWithoutUserID(t *testing.T) {
	src := &fakeSource{available: makeVolunteers(3)}
	feed := volunteers.NewEmotionFeed(src, nil, 2)

	page, err := feed.FetchNext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(page))
	assert.True(t, feed.UsedFallback())
	assert.Zero(t, src.matchedCalls, "no emotion request without a user id")
}

func TestFallbackOnNotFound(t *testing.T) {
	src := &fakeSource{
		matchedErr: &api.Error{StatusCode: http.StatusNotFound, Message: "no matching volunteers"},
		available:  makeVolunteers(3),
	}
	feed := volunteers.NewEmotionFeed(src, userID(7), 2)

	page, err := feed.FetchNext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(page))
	assert.True(t, feed.UsedFallback())
}

func TestFallbackOnTransportFailure(t *testing.T) {
	src := &fakeSource{
		matchedErr: errors.New("connection refused"),
		available:  makeVolunteers(1),
	}
	feed := volunteers.NewEmotionFeed(src, userID(7), 2)

	page, err := feed.FetchNext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(page))
	assert.True(t, feed.UsedFallback())
}

func TestFallbackDecidedOncePerFeed(t *testing.T) {
	src := &fakeSource{
		matchedErr: &api.Error{StatusCode: http.StatusNotFound},
		available:  makeVolunteers(5),
	}
	feed := volunteers.NewEmotionFeed(src, userID(7), 2)

	for feed.HasMore() {
		_, err := feed.FetchNext(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, 1, src.matchedCalls, "fallback decision is not retried per page")
	assert.Equal(t, 1, src.availableCalls)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(feed.Items()))
}

func TestOtherServerErrorsPropagate(t *testing.T) {
	src := &fakeSource{
		matchedErr: &api.Error{StatusCode: http.StatusInternalServerError, Message: "db down"},
		available:  makeVolunteers(3),
	}
	feed := volunteers.NewEmotionFeed(src, userID(7), 2)

	_, err := feed.FetchNext(context.Background())
	require.Error(t, err)
	assert.Zero(t, src.availableCalls, "a 500 does not trigger the fallback")
	assert.True(t, feed.HasMore(), "a failed fetch can be retried by the user")
}
