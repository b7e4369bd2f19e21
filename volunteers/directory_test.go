package volunteers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peersupport/models"
	"peersupport/volunteers"
)

type fakeDirectory struct {
	pages map[int]models.VolunteerPage
	calls []int
}

func (f *fakeDirectory) PaginatedVolunteers(ctx context.Context, page, pageSize int) (*models.VolunteerPage, error) {
	f.calls = append(f.calls, page)
	p := f.pages[page]
	return &p, nil
}

func TestDirectoryPagesWithServerCursor(t *testing.T) {
	src := &fakeDirectory{pages: map[int]models.VolunteerPage{
		1: {Volunteers: makeVolunteers(2), Page: 1, Total: 5, HasNext: true},
		2: {Volunteers: makeVolunteers(5)[2:4], Page: 2, Total: 5, HasNext: true},
		3: {Volunteers: makeVolunteers(5)[4:], Page: 3, Total: 5, HasNext: false},
	}}
	feed := volunteers.NewDirectoryFeed(src, 2)

	for feed.HasMore() {
		_, err := feed.FetchNext(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, []int{1, 2, 3}, src.calls, "each page requested exactly once, in order")
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(feed.Items()))
	assert.Equal(t, 5, feed.Total())

	// Terminal page reached: no request on further calls.
	page, err := feed.FetchNext(context.Background())
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Equal(t, []int{1, 2, 3}, src.calls)
}

func TestDirectorySinglePage(t *testing.T) {
	src := &fakeDirectory{pages: map[int]models.VolunteerPage{
		1: {Volunteers: makeVolunteers(1), Page: 1, Total: 1, HasNext: false},
	}}
	feed := volunteers.NewDirectoryFeed(src, 10)

	page, err := feed.FetchNext(context.Background())
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.False(t, feed.HasMore())
}
