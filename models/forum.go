package models

// Forum represents a themed discussion space. Immutable on the client
// except via a full refetch.
type Forum struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Thematic       string `json:"thematic"`
	CreatedAt      string `json:"created_at"`
	IsActive       bool   `json:"is_active"`
	ModeratorCount int    `json:"moderator_count"`
	PostCount      int    `json:"post_count"`
}

// ForumPost represents a post inside a forum.
type ForumPost struct {
	ID            int64  `json:"id"`
	ForumID       int64  `json:"forum_id"`
	AuthorID      int64  `json:"author_id"`
	AuthorName    string `json:"author_name"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	IsAnonymous   bool   `json:"is_anonymous"`
	LikeCount     int    `json:"like_count"`
	ResponseCount int    `json:"response_count"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	IsReported    bool   `json:"is_reported"`
}

// PostResponse is a comment on a post. Responses are not held in a global
// cache; they live as a query result keyed by post id and are refetched
// wholesale after mutations.
type PostResponse struct {
	ID          int64  `json:"id"`
	PostID      int64  `json:"post_id"`
	AuthorID    int64  `json:"author_id"`
	AuthorName  string `json:"author_name"`
	Content     string `json:"content"`
	IsAnonymous bool   `json:"is_anonymous"`
	LikeCount   int    `json:"like_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CreatePostRequest is the payload for POST /forums/posts.
type CreatePostRequest struct {
	ForumID     int64  `json:"forum_id"`
	UserID      int64  `json:"user_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// UpdatePostRequest is the payload for PUT /forums/posts/{id}.
type UpdatePostRequest struct {
	UserID  int64  `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateResponseRequest is the payload for POST /forums/responses.
type CreateResponseRequest struct {
	PostID      int64  `json:"post_id"`
	UserID      int64  `json:"user_id"`
	Content     string `json:"content"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// ReportPostRequest is the payload for POST /forums/posts/{id}/report.
type ReportPostRequest struct {
	Reason string `json:"reason"`
}
