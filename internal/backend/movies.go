package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/IsaacDSC/cinecritique/internal/domain"
)

func (c *Client) AllMovies(ctx context.Context) (domain.Movies, error) {
	var movies domain.Movies
	if err := c.do(ctx, request{method: http.MethodGet, path: "/movies/paginated"}, &movies); err != nil {
		return nil, fmt.Errorf("fetch all movies: %w", err)
	}
	return movies, nil
}

// AllGenres returns the genre names, sorted. The backend answers with an object
// keyed by genre name whose values carry nothing the gateway uses.
func (c *Client) AllGenres(ctx context.Context) ([]string, error) {
	var raw map[string]json.RawMessage
	if err := c.do(ctx, request{method: http.MethodGet, path: "/movies/genre"}, &raw); err != nil {
		return nil, fmt.Errorf("fetch genres: %w", err)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

func (c *Client) MoviesByGenre(ctx context.Context, genre string) (domain.Movies, error) {
	var movies domain.Movies
	path := "/movies/genre/" + url.PathEscape(genre)
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &movies); err != nil {
		return nil, fmt.Errorf("fetch movies of genre %s: %w", genre, err)
	}
	return movies, nil
}

func (c *Client) Movie(ctx context.Context, imdbID string) (domain.Movie, error) {
	var movie domain.Movie
	path := "/movies/" + url.PathEscape(imdbID)
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &movie); err != nil {
		return domain.Movie{}, fmt.Errorf("fetch movie %s: %w", imdbID, err)
	}
	return movie, nil
}

func (c *Client) BestRated(ctx context.Context) (domain.Movies, error) {
	var movies domain.Movies
	if err := c.do(ctx, request{method: http.MethodGet, path: "/movies/bestrated/paginated"}, &movies); err != nil {
		return nil, fmt.Errorf("fetch best rated movies: %w", err)
	}
	return movies, nil
}
