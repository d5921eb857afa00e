package api

import (
	"context"
	"net/url"
	"strconv"
)

// RecommendationsByGenres returns recommendations filtered by genre names,
// optionally capped by price. A zero maxPrice means no cap.
func (c *Client) RecommendationsByGenres(ctx context.Context, genres []string, maxPrice float64, limit int) ([]Game, error) {
	q := url.Values{}
	for _, genre := range genres {
		q.Add("genre", genre)
	}
	if maxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(maxPrice, 'f', 2, 64))
	}
	q.Set("limit", strconv.Itoa(limit))

	var out []Game
	if err := c.get(ctx, "/api/recommendations/by-genres", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PersonalizedRecommendations returns recommendations scored server-side from
// the user's favorites.
func (c *Client) PersonalizedRecommendations(ctx context.Context, limit int) ([]Game, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var out []Game
	if err := c.get(ctx, "/api/recommendations/personalized", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
