// Package volunteers implements the paginated volunteer feeds. Two
// independent feed shapes exist: an emotion-matched feed with a one-shot
// fallback to the available-volunteers source, and a server-paged directory
// feed. Feeds are scoped to their consumer and never deduplicate across
// each other.
package volunteers

import (
	"context"
	"sync"

	"peersupport/api"
	"peersupport/models"
	"peersupport/utils"
)

// EmotionSource is the part of the API client the emotion feed uses.
type EmotionSource interface {
	AvailableVolunteers(ctx context.Context) ([]models.Volunteer, error)
	VolunteersByEmotions(ctx context.Context, userID int64) ([]models.Volunteer, error)
}

// DirectorySource is the part of the API client the directory feed uses.
type DirectorySource interface {
	PaginatedVolunteers(ctx context.Context, page, pageSize int) (*models.VolunteerPage, error)
}

// EmotionFeed pages through volunteers matching the user's emotion
// keywords. The matched list is fetched once and sliced into pages
// client-side; a page already served is never produced again.
//
// Fallback policy: with no user id, or when the by-emotions request fails
// with a 404 or a transport failure, the feed switches to the
// available-volunteers source. The decision is made once, on the first
// fetch, and never changes mid-pagination.
type EmotionFeed struct {
	api      EmotionSource
	userID   *int64
	pageSize int

	mu       sync.Mutex
	source   []models.Volunteer
	resolved bool
	fellBack bool
	items    []models.Volunteer
	nextPage int
	done     bool
}

// NewEmotionFeed creates a feed for the given user. userID may be nil for
// an unauthenticated consumer.
func NewEmotionFeed(apiClient EmotionSource, userID *int64, pageSize int) *EmotionFeed {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &EmotionFeed{api: apiClient, userID: userID, pageSize: pageSize}
}

// resolve picks the source list for the whole pagination run.
func (f *EmotionFeed) resolve(ctx context.Context) error {
	if f.resolved {
		return nil
	}

	if f.userID == nil {
		list, err := f.api.AvailableVolunteers(ctx)
		if err != nil {
			return err
		}
		f.source = list
		f.fellBack = true
		f.resolved = true
		return nil
	}

	list, err := f.api.VolunteersByEmotions(ctx, *f.userID)
	if err == nil {
		f.source = list
		f.resolved = true
		return nil
	}
	if !api.IsNotFound(err) && !api.IsTransport(err) {
		return err
	}

	// No matching volunteers (or no response at all): use the available
	// volunteers with the same page arithmetic.
	utils.Warn("volunteers", "resolve", "emotion match unavailable, falling back to available volunteers")
	list, err = f.api.AvailableVolunteers(ctx)
	if err != nil {
		return err
	}
	f.source = list
	f.fellBack = true
	f.resolved = true
	return nil
}

// FetchNext produces the next page and appends it to the accumulated items.
// After the terminal page it returns (nil, nil) without touching the source.
func (f *EmotionFeed) FetchNext(ctx context.Context) ([]models.Volunteer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done {
		return nil, nil
	}
	if err := f.resolve(ctx); err != nil {
		return nil, err
	}

	start := f.nextPage * f.pageSize
	end := start + f.pageSize
	if start >= len(f.source) {
		f.done = true
		return nil, nil
	}
	if end > len(f.source) {
		end = len(f.source)
	}

	page := f.source[start:end]
	f.items = append(f.items, page...)
	if end < len(f.source) {
		f.nextPage++
	} else {
		f.done = true
	}
	return append([]models.Volunteer(nil), page...), nil
}

// Items returns every volunteer fetched so far, in page order.
func (f *EmotionFeed) Items() []models.Volunteer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Volunteer(nil), f.items...)
}

// HasMore reports whether another page can still be requested.
func (f *EmotionFeed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.done
}

// UsedFallback reports whether the feed is serving the available-volunteers
// source instead of the emotion match.
func (f *EmotionFeed) UsedFallback() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fellBack
}
