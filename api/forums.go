package api

import (
	"context"
	"fmt"

	"peersupport/models"
)

// ListForums fetches every forum.
func (c *Client) ListForums(ctx context.Context) ([]models.Forum, error) {
	var forums []models.Forum
	if err := c.get(ctx, "/forums/", &forums); err != nil {
		return nil, err
	}
	return forums, nil
}

// ListPosts fetches all posts of a forum.
func (c *Client) ListPosts(ctx context.Context, forumID int64) ([]models.ForumPost, error) {
	var posts []models.ForumPost
	if err := c.get(ctx, fmt.Sprintf("/forums/%d/posts", forumID), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost creates a post and returns the server's record of it.
func (c *Client) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.ForumPost, error) {
	var post models.ForumPost
	if err := c.post(ctx, "/forums/posts", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost edits a post's title and content.
func (c *Client) UpdatePost(ctx context.Context, postID int64, req models.UpdatePostRequest) (*models.ForumPost, error) {
	var post models.ForumPost
	if err := c.put(ctx, fmt.Sprintf("/forums/posts/%d", postID), req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post. The server enforces ownership via user_id.
func (c *Client) DeletePost(ctx context.Context, postID, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("/forums/posts/%d?user_id=%d", postID, userID))
}

// LikePost toggles the caller's like on a post.
func (c *Client) LikePost(ctx context.Context, postID, userID int64) error {
	return c.post(ctx, fmt.Sprintf("/forums/posts/%d/like?user_id=%d", postID, userID), nil, nil)
}

// ReportPost flags a post for moderation.
func (c *Client) ReportPost(ctx context.Context, postID int64, reason string) error {
	return c.post(ctx, fmt.Sprintf("/forums/posts/%d/report", postID), models.ReportPostRequest{Reason: reason}, nil)
}
