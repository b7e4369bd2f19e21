package store

import "fmt"

// Query keys shared between the stores, the query cache, and the
// interaction controllers.
const (
	ForumsQueryKey = "forums"
	PostsQueryKey  = "forum-posts"
)

// ResponsesQueryKey scopes the comment list of one post.
func ResponsesQueryKey(postID int64) string {
	return fmt.Sprintf("post-responses:%d", postID)
}
