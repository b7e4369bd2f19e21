// Package postdetail composes the interactions of one post detail view:
// comment creation and deletion, like toggling at post and comment level,
// post deletion, and reporting. Local optimistic state is reconciled with
// the server through query invalidation and refetch.
package postdetail

import (
	"context"
	"errors"
	"strings"
	"sync"

	"peersupport/models"
	"peersupport/query"
	"peersupport/store"
)

// Validation failures caught before any network call is made.
var (
	ErrNotAuthenticated = errors.New("please login to continue")
	ErrEmptyContent     = errors.New("content cannot be empty")
	ErrEmptyReason      = errors.New("a report reason is required")
	ErrNotOwner         = errors.New("you can only delete your own content")
)

// API is the part of the HTTP client the controller uses.
type API interface {
	ListResponses(ctx context.Context, postID int64) ([]models.PostResponse, error)
	CreateResponse(ctx context.Context, req models.CreateResponseRequest) (*models.PostResponse, error)
	DeleteResponse(ctx context.Context, responseID, userID int64) error
	LikePost(ctx context.Context, postID, userID int64) error
	LikeResponse(ctx context.Context, responseID, userID int64) error
	DeletePost(ctx context.Context, postID, userID int64) error
	ReportPost(ctx context.Context, postID int64, reason string) error
}

// Controller drives the interactions of a single post detail view. The
// ownership checks it performs are a UX convenience only; the server
// enforces them independently.
type Controller struct {
	api     API
	session *store.SessionStore
	forums  *store.ForumStore
	cache   *query.Cache
	postID  int64

	mu sync.Mutex
	// Optimistic like increments per response id, applied on top of the
	// cached list until a refetch has reflected them server-side. Never
	// rolled back on failure.
	likeDeltas map[int64]int
}

// NewController creates a controller for one post.
func NewController(apiClient API, session *store.SessionStore, forums *store.ForumStore, cache *query.Cache, postID int64) *Controller {
	return &Controller{
		api:        apiClient,
		session:    session,
		forums:     forums,
		cache:      cache,
		postID:     postID,
		likeDeltas: make(map[int64]int),
	}
}

// PostID returns the post this controller is scoped to.
func (c *Controller) PostID() int64 {
	return c.postID
}

func (c *Controller) currentUser() (*models.User, error) {
	user := c.session.User()
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}

func (c *Controller) responsesKey() string {
	return store.ResponsesQueryKey(c.postID)
}

// Responses returns the post's comment list, served from the query cache
// and refetched when the key was invalidated. Pending optimistic like
// increments are layered on top of the cached values.
func (c *Controller) Responses(ctx context.Context) ([]models.PostResponse, error) {
	list, err := query.Fetch(ctx, c.cache, c.responsesKey(), func(ctx context.Context) ([]models.PostResponse, error) {
		return c.api.ListResponses(ctx, c.postID)
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	out := append([]models.PostResponse(nil), list...)
	if len(c.likeDeltas) > 0 {
		for i := range out {
			out[i].LikeCount += c.likeDeltas[out[i].ID]
		}
	}
	return out, nil
}

// CreateResponse submits a comment. The body must be non-empty after
// trimming and a user must be signed in; both are checked before any
// request is sent. On success the comment list and the posts list are
// invalidated and the comments are refetched.
func (c *Controller) CreateResponse(ctx context.Context, content string, anonymous bool) (*models.PostResponse, error) {
	user, err := c.currentUser()
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	created, err := c.api.CreateResponse(ctx, models.CreateResponseRequest{
		PostID:      c.postID,
		UserID:      user.ID,
		Content:     content,
		IsAnonymous: anonymous,
	})
	if err != nil {
		return nil, err
	}

	c.cache.Invalidate(c.responsesKey())
	c.cache.Invalidate(store.PostsQueryKey)
	if _, err := c.Responses(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// DeleteResponse removes a comment. Only the comment's author may delete
// it; the check runs client-side before the request and again server-side.
func (c *Controller) DeleteResponse(ctx context.Context, response models.PostResponse) error {
	user, err := c.currentUser()
	if err != nil {
		return err
	}
	if response.AuthorID != user.ID {
		return ErrNotOwner
	}

	if err := c.api.DeleteResponse(ctx, response.ID, user.ID); err != nil {
		return err
	}

	c.cache.Invalidate(c.responsesKey())
	c.cache.Invalidate(store.PostsQueryKey)
	_, err = c.Responses(ctx)
	return err
}

// TogglePostLike flips the caller's like on the post. The forum cache's
// counter is bumped immediately, before the server confirms; a later
// failure does not roll it back.
func (c *Controller) TogglePostLike(ctx context.Context) error {
	user, err := c.currentUser()
	if err != nil {
		return err
	}

	c.forums.LikePost(c.postID)

	if err := c.api.LikePost(ctx, c.postID, user.ID); err != nil {
		return err
	}
	c.cache.Invalidate(store.PostsQueryKey)
	return nil
}

// ToggleResponseLike flips the caller's like on a comment. The optimistic
// increment is applied immediately and retired once the refetched list
// reflects the server's count.
func (c *Controller) ToggleResponseLike(ctx context.Context, responseID int64) error {
	user, err := c.currentUser()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.likeDeltas[responseID]++
	c.mu.Unlock()

	if err := c.api.LikeResponse(ctx, responseID, user.ID); err != nil {
		return err
	}

	c.cache.Invalidate(c.responsesKey())
	c.mu.Lock()
	delete(c.likeDeltas, responseID)
	c.mu.Unlock()

	_, err = c.Responses(ctx)
	return err
}

// DeletePost removes the post itself. Only the author may delete it.
func (c *Controller) DeletePost(ctx context.Context, post models.ForumPost) error {
	user, err := c.currentUser()
	if err != nil {
		return err
	}
	if post.AuthorID != user.ID {
		return ErrNotOwner
	}

	if err := c.api.DeletePost(ctx, post.ID, user.ID); err != nil {
		return err
	}

	c.forums.DeletePost(post.ID)
	c.cache.Invalidate(store.PostsQueryKey)
	return nil
}

// ReportPost flags the post for moderation with a non-empty reason.
func (c *Controller) ReportPost(ctx context.Context, reason string) error {
	if _, err := c.currentUser(); err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyReason
	}
	return c.api.ReportPost(ctx, c.postID, strings.TrimSpace(reason))
}
