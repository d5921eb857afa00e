package api

import (
	"context"
)

// ProfileUpdate carries the mutable profile fields. Nil means leave unchanged.
type ProfileUpdate struct {
	Nick     *string  `json:"nick,omitempty"`
	Email    *string  `json:"email,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
}

// Me returns the profile of the authenticated user
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	if err := c.get(ctx, "/api/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMe applies a partial profile update and returns the new identity
func (c *Client) UpdateMe(ctx context.Context, update ProfileUpdate) (*User, error) {
	var out User
	if err := c.patch(ctx, "/api/users/me", update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
