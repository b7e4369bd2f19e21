// Package forum orchestrates the forum feed: server fetches scoped by
// query key feed the forum store, and post mutations update the store
// optimistically alongside invalidation-triggered refetches.
package forum

import (
	"context"
	"errors"
	"strings"

	"peersupport/models"
	"peersupport/query"
	"peersupport/store"
)

var (
	// ErrNotAuthenticated is returned when no user is signed in.
	ErrNotAuthenticated = errors.New("please login to continue")
	// ErrNoForumSelected is returned when an operation needs a selected forum.
	ErrNoForumSelected = errors.New("select a forum first")
	// ErrEmptyPost is returned when the trimmed title or content is empty.
	ErrEmptyPost = errors.New("title and content are required")
	// ErrNotOwner is returned when the actor does not own the post.
	ErrNotOwner = errors.New("you can only modify your own posts")
)

// API is the part of the HTTP client the service uses.
type API interface {
	ListForums(ctx context.Context) ([]models.Forum, error)
	ListPosts(ctx context.Context, forumID int64) ([]models.ForumPost, error)
	CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.ForumPost, error)
	UpdatePost(ctx context.Context, postID int64, req models.UpdatePostRequest) (*models.ForumPost, error)
	DeletePost(ctx context.Context, postID, userID int64) error
	LikePost(ctx context.Context, postID, userID int64) error
}

// Service drives the forum feed.
type Service struct {
	api     API
	session *store.SessionStore
	store   *store.ForumStore
	cache   *query.Cache
}

// NewService creates a forum service.
func NewService(apiClient API, session *store.SessionStore, forumStore *store.ForumStore, cache *query.Cache) *Service {
	return &Service{api: apiClient, session: session, store: forumStore, cache: cache}
}

// Store returns the underlying forum store.
func (s *Service) Store() *store.ForumStore {
	return s.store
}

func (s *Service) currentUser() (*models.User, error) {
	user := s.session.User()
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}

// Forums returns the forum list, refetching when the cached result is
// stale. The store mirrors whatever the cache served.
func (s *Service) Forums(ctx context.Context) ([]models.Forum, error) {
	forums, err := query.Fetch(ctx, s.cache, store.ForumsQueryKey, func(ctx context.Context) ([]models.Forum, error) {
		return s.api.ListForums(ctx)
	})
	if err != nil {
		return nil, err
	}
	s.store.SetForums(forums)
	return forums, nil
}

// Select switches the current forum. The store invalidates the posts query
// key, so the next Posts call refetches against the new forum.
func (s *Service) Select(forum *models.Forum) {
	s.store.SetSelectedForum(forum)
}

// Posts returns the selected forum's posts. The posts query key is shared
// across forums because switching the selection always invalidates it.
func (s *Service) Posts(ctx context.Context) ([]models.ForumPost, error) {
	selected := s.store.SelectedForum()
	if selected == nil {
		return nil, ErrNoForumSelected
	}

	posts, err := query.Fetch(ctx, s.cache, store.PostsQueryKey, func(ctx context.Context) ([]models.ForumPost, error) {
		return s.api.ListPosts(ctx, selected.ID)
	})
	if err != nil {
		return nil, err
	}
	s.store.SetPosts(posts)
	return posts, nil
}

// CreatePost publishes a post in the selected forum. The created post is
// prepended to the store immediately; the posts query is also invalidated
// for the server-driven refetch.
func (s *Service) CreatePost(ctx context.Context, title, content string, anonymous bool) (*models.ForumPost, error) {
	user, err := s.currentUser()
	if err != nil {
		return nil, err
	}
	selected := s.store.SelectedForum()
	if selected == nil {
		return nil, ErrNoForumSelected
	}
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, ErrEmptyPost
	}

	created, err := s.api.CreatePost(ctx, models.CreatePostRequest{
		ForumID:     selected.ID,
		UserID:      user.ID,
		Title:       title,
		Content:     content,
		IsAnonymous: anonymous,
	})
	if err != nil {
		return nil, err
	}

	s.store.AddPost(*created)
	s.cache.Invalidate(store.PostsQueryKey)
	return created, nil
}

// UpdatePost edits a post's title and content.
func (s *Service) UpdatePost(ctx context.Context, post models.ForumPost, title, content string) (*models.ForumPost, error) {
	user, err := s.currentUser()
	if err != nil {
		return nil, err
	}
	if post.AuthorID != user.ID {
		return nil, ErrNotOwner
	}
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, ErrEmptyPost
	}

	updated, err := s.api.UpdatePost(ctx, post.ID, models.UpdatePostRequest{
		UserID:  user.ID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		return nil, err
	}

	s.store.UpdatePost(updated.ID, *updated)
	s.cache.Invalidate(store.PostsQueryKey)
	return updated, nil
}

// DeletePost removes the actor's own post.
func (s *Service) DeletePost(ctx context.Context, post models.ForumPost) error {
	user, err := s.currentUser()
	if err != nil {
		return err
	}
	if post.AuthorID != user.ID {
		return ErrNotOwner
	}

	if err := s.api.DeletePost(ctx, post.ID, user.ID); err != nil {
		return err
	}
	s.store.DeletePost(post.ID)
	s.cache.Invalidate(store.PostsQueryKey)
	return nil
}

// LikePost toggles the caller's like on a post in the feed. The store's
// counter is bumped immediately and never rolled back on failure.
func (s *Service) LikePost(ctx context.Context, postID int64) error {
	user, err := s.currentUser()
	if err != nil {
		return err
	}

	s.store.LikePost(postID)
	return s.api.LikePost(ctx, postID, user.ID)
}
