package store

import (
	"sync"

	"peersupport/models"
)

// Invalidator marks cached query results stale. Satisfied by *query.Cache.
type Invalidator interface {
	Invalidate(key string)
}

// ForumStore is the in-memory mirror of server-fetched forums and posts.
// Mutation helpers are applied optimistically alongside server refetches.
type ForumStore struct {
	mu            sync.Mutex
	selectedForum *models.Forum
	forums        []models.Forum
	posts         []models.ForumPost
	invalidator   Invalidator
}

// NewForumStore creates an empty forum store. invalidator may be nil.
func NewForumStore(invalidator Invalidator) *ForumStore {
	return &ForumStore{invalidator: invalidator}
}

// SetSelectedForum switches the current forum. The posts query key is
// invalidated so the view treats posts as stale until the next fetch.
func (s *ForumStore) SetSelectedForum(forum *models.Forum) {
	s.mu.Lock()
	s.selectedForum = forum
	s.mu.Unlock()

	if s.invalidator != nil {
		s.invalidator.Invalidate(PostsQueryKey)
	}
}

// SetForums replaces the forum collection wholesale.
func (s *ForumStore) SetForums(forums []models.Forum) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forums = append([]models.Forum(nil), forums...)
}

// SetPosts replaces the posts collection wholesale.
func (s *ForumStore) SetPosts(posts []models.ForumPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]models.ForumPost(nil), posts...)
}

// AddPost prepends a just-created post, independent of the server-driven
// refetch that also occurs.
func (s *ForumStore) AddPost(post models.ForumPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]models.ForumPost{post}, s.posts...)
}

// UpdatePost replaces the matching post by id. No-op when the id is absent.
func (s *ForumStore) UpdatePost(postID int64, post models.ForumPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i] = post
			return
		}
	}
}

// DeletePost removes the matching post, preserving the order of the rest.
func (s *ForumStore) DeletePost(postID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	remaining := s.posts[:0]
	for _, p := range s.posts {
		if p.ID != postID {
			remaining = append(remaining, p)
		}
	}
	s.posts = remaining
}

// LikePost increments the post's like counter by exactly one. The counter
// is optimistic: a second call double-increments even if the server only
// toggles once, and no rollback happens on a later server failure.
func (s *ForumStore) LikePost(postID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].LikeCount++
			return
		}
	}
}

// Reset restores the empty initial state.
func (s *ForumStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedForum = nil
	s.forums = nil
	s.posts = nil
}

// SelectedForum returns the currently selected forum, nil when none.
func (s *ForumStore) SelectedForum() *models.Forum {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedForum
}

// Forums returns a copy of the forum collection.
func (s *ForumStore) Forums() []models.Forum {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Forum(nil), s.forums...)
}

// Posts returns a copy of the posts collection.
func (s *ForumStore) Posts() []models.ForumPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ForumPost(nil), s.posts...)
}
