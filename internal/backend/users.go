package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/IsaacDSC/cinecritique/internal/domain"
)

// The calls below forward the caller's bearer token (see auth.WithToken) and fail
// with domain.ErrMissingAccessToken when it is absent.

func (c *Client) Favorites(ctx context.Context) (domain.Movies, error) {
	var movies domain.Movies
	if err := c.do(ctx, request{method: http.MethodGet, path: "/users/favorites/all", authed: true}, &movies); err != nil {
		return nil, fmt.Errorf("fetch favorites: %w", err)
	}
	return movies, nil
}

func (c *Client) AddFavorite(ctx context.Context, imdbID string) (string, error) {
	var msg string
	r := request{
		method: http.MethodPost,
		path:   "/users/favorites/add",
		query:  url.Values{"imdbId": {imdbID}},
		body:   struct{}{},
		authed: true,
	}
	if err := c.do(ctx, r, &msg); err != nil {
		return "", fmt.Errorf("add favorite %s: %w", imdbID, err)
	}
	return msg, nil
}

func (c *Client) RemoveFavorite(ctx context.Context, imdbID string) (string, error) {
	var msg string
	r := request{
		method: http.MethodDelete,
		path:   "/users/favorites/remove",
		query:  url.Values{"imdbId": {imdbID}},
		authed: true,
	}
	if err := c.do(ctx, r, &msg); err != nil {
		return "", fmt.Errorf("remove favorite %s: %w", imdbID, err)
	}
	return msg, nil
}

// RatedMovieIDs lists the imdb ids the caller has reviewed.
func (c *Client) RatedMovieIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := c.do(ctx, request{method: http.MethodGet, path: "/users/rated-movies", authed: true}, &ids); err != nil {
		return nil, fmt.Errorf("fetch rated movies: %w", err)
	}
	return ids, nil
}

func (c *Client) Recommendations(ctx context.Context) (domain.Movies, error) {
	var movies domain.Movies
	if err := c.do(ctx, request{method: http.MethodGet, path: "/ai/recommendation", authed: true}, &movies); err != nil {
		return nil, fmt.Errorf("fetch recommendations: %w", err)
	}
	return movies, nil
}

func (c *Client) CreateReview(ctx context.Context, review domain.Review) (json.RawMessage, error) {
	var out json.RawMessage
	r := request{method: http.MethodPost, path: "/reviews/create", body: review, authed: true}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("create review for %s: %w", review.ImdbID, err)
	}
	return out, nil
}

func (c *Client) DeleteReview(ctx context.Context, imdbID string) (string, error) {
	var msg string
	r := request{
		method: http.MethodDelete,
		path:   "/reviews/remove",
		query:  url.Values{"imdbId": {imdbID}},
		authed: true,
	}
	if err := c.do(ctx, r, &msg); err != nil {
		return "", fmt.Errorf("delete review for %s: %w", imdbID, err)
	}
	return msg, nil
}
