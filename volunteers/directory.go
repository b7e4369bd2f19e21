package volunteers

import (
	"context"
	"sync"

	"peersupport/models"
)

// DirectoryFeed pages through the unfiltered volunteer directory using the
// server's page/has_next cursor. Pages are appended in request order; a
// page is requested at most once; no request is issued after the server
// reports has_next=false.
type DirectoryFeed struct {
	api      DirectorySource
	pageSize int

	mu       sync.Mutex
	items    []models.Volunteer
	nextPage int
	done     bool
	total    int
}

// NewDirectoryFeed creates a directory feed starting at page 1.
func NewDirectoryFeed(apiClient DirectorySource, pageSize int) *DirectoryFeed {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &DirectoryFeed{api: apiClient, pageSize: pageSize, nextPage: 1}
}

// FetchNext requests exactly one page and appends it. After the terminal
// page it returns (nil, nil) without a request.
func (f *DirectoryFeed) FetchNext(ctx context.Context) ([]models.Volunteer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done {
		return nil, nil
	}

	page, err := f.api.PaginatedVolunteers(ctx, f.nextPage, f.pageSize)
	if err != nil {
		return nil, err
	}

	f.items = append(f.items, page.Volunteers...)
	f.total = page.Total
	if page.HasNext {
		f.nextPage = page.Page + 1
	} else {
		f.done = true
	}
	return append([]models.Volunteer(nil), page.Volunteers...), nil
}

// Items returns every volunteer fetched so far, in page order.
func (f *DirectoryFeed) Items() []models.Volunteer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Volunteer(nil), f.items...)
}

// HasMore reports whether another page can still be requested.
func (f *DirectoryFeed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.done
}

// Total returns the server-reported total, zero before the first page.
func (f *DirectoryFeed) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total
}
