package api

import (
	"context"
	"fmt"

	"peersupport/models"
)

// AvailableVolunteers fetches all volunteers currently marked available.
func (c *Client) AvailableVolunteers(ctx context.Context) ([]models.Volunteer, error) {
	var volunteers []models.Volunteer
	if err := c.get(ctx, "/volunteers/available", &volunteers); err != nil {
		return nil, err
	}
	return volunteers, nil
}

// VolunteersByEmotions fetches volunteers whose emotion keywords overlap the
// user's. Returns a 404 *Error when nothing matches.
func (c *Client) VolunteersByEmotions(ctx context.Context, userID int64) ([]models.Volunteer, error) {
	var volunteers []models.Volunteer
	if err := c.get(ctx, fmt.Sprintf("/volunteers/by-emotions/%d", userID), &volunteers); err != nil {
		return nil, err
	}
	return volunteers, nil
}

// AllVolunteers fetches the unfiltered volunteer list.
func (c *Client) AllVolunteers(ctx context.Context) ([]models.Volunteer, error) {
	var volunteers []models.Volunteer
	if err := c.get(ctx, "/volunteers/", &volunteers); err != nil {
		return nil, err
	}
	return volunteers, nil
}

// PaginatedVolunteers fetches one server-side page of the volunteer
// directory.
func (c *Client) PaginatedVolunteers(ctx context.Context, page, pageSize int) (*models.VolunteerPage, error) {
	var result models.VolunteerPage
	path := fmt.Sprintf("/volunteers/paginated?page=%d&page_size=%d", page, pageSize)
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
