package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ludexhq/ludex/internal/errors"
)

// ListGames returns one page of the catalog. A zero genreID means no filter.
func (c *Client) ListGames(ctx context.Context, page, pageSize int, genreID int64) (*Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))
	if genreID > 0 {
		query.Set("genre", strconv.FormatInt(genreID, 10))
	}

	var out Page
	if err := c.get(ctx, "/api/games", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GameByID returns the catalog detail for one game
func (c *Client) GameByID(ctx context.Context, id int64) (*GameDetails, error) {
	var out GameDetails
	err := c.get(ctx, fmt.Sprintf("/api/rawg/game/%d", id), nil, &out)
	if err != nil {
		if errors.CodeOf(err) == errors.ErrCodeNotFound {
			return nil, errors.NewNotFoundError("game")
		}
		return nil, err
	}
	return &out, nil
}

// SearchGames runs a catalog text search. Empty or whitespace-only queries
// return an empty result without a network call; callers rely on that for the
// debounced search box.
func (c *Client) SearchGames(ctx context.Context, query string) ([]Game, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Set("query", query)

	var out []Game
	if err := c.get(ctx, "/api/rawg/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RandomGames returns count random catalog entries
func (c *Client) RandomGames(ctx context.Context, count int) ([]Game, error) {
	q := url.Values{}
	q.Set("count", strconv.Itoa(count))

	var out []Game
	if err := c.get(ctx, "/api/rawg/random", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TrendingGames returns one page of currently trending games
func (c *Client) TrendingGames(ctx context.Context, page, pageSize int) (*Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	var out Page
	if err := c.get(ctx, "/api/rawg/trending", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Genres lists the available catalog genres
func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	var out []Genre
	if err := c.get(ctx, "/api/genres", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SimilarGames returns games similar to the given one
func (c *Client) SimilarGames(ctx context.Context, gameID int64, limit int) ([]Game, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var out []Game
	if err := c.get(ctx, fmt.Sprintf("/api/games/%d/similar", gameID), q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GameScreenshots returns the screenshots for a game
func (c *Client) GameScreenshots(ctx context.Context, gameID int64) ([]Screenshot, error) {
	var out []Screenshot
	if err := c.get(ctx, fmt.Sprintf("/api/rawg/game/%d/screenshots", gameID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
