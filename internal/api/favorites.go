package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// addFavoriteRequest is the add-favorite payload. Source is always explicit.
type addFavoriteRequest struct {
	Source FavoriteSource `json:"source"`
	GameID int64          `json:"game_id"`
}

// ListFavorites returns one page of the user's favorites
func (c *Client) ListFavorites(ctx context.Context, page, pageSize int) (*FavoritesPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	var out FavoritesPage
	if err := c.get(ctx, "/api/users/favorites", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddFavorite adds a game to the user's favorites
func (c *Client) AddFavorite(ctx context.Context, source FavoriteSource, gameID int64) error {
	return c.post(ctx, "/api/users/favorites", addFavoriteRequest{
		Source: source,
		GameID: gameID,
	}, nil)
}

// RemoveFavorite removes a game from the user's favorites
func (c *Client) RemoveFavorite(ctx context.Context, gameID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/favorites/%d", gameID), nil)
}

// IsFavorite reports whether a game is in the user's favorites
func (c *Client) IsFavorite(ctx context.Context, gameID int64) (bool, error) {
	var out bool
	if err := c.get(ctx, fmt.Sprintf("/api/users/favorites/contains/%d", gameID), nil, &out); err != nil {
		return false, err
	}
	return out, nil
}
