package api

import (
	"context"

	"peersupport/models"
)

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/signup", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
