package api

import (
	"context"
	"fmt"

	"peersupport/models"
)

// ListResponses fetches all comments of a post.
func (c *Client) ListResponses(ctx context.Context, postID int64) ([]models.PostResponse, error) {
	var responses []models.PostResponse
	if err := c.get(ctx, fmt.Sprintf("/forums/posts/%d/responses", postID), &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// CreateResponse posts a comment and returns the server's record of it.
func (c *Client) CreateResponse(ctx context.Context, req models.CreateResponseRequest) (*models.PostResponse, error) {
	var resp models.PostResponse
	if err := c.post(ctx, "/forums/responses", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteResponse removes a comment. The server enforces ownership via user_id.
func (c *Client) DeleteResponse(ctx context.Context, responseID, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("/forums/responses/%d?user_id=%d", responseID, userID))
}

// LikeResponse toggles the caller's like on a comment.
func (c *Client) LikeResponse(ctx context.Context, responseID, userID int64) error {
	return c.post(ctx, fmt.Sprintf("/forums/responses/%d/like?user_id=%d", responseID, userID), nil, nil)
}
