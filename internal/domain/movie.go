package domain

import (
	"fmt"
	"strings"
)

type Review struct {
	ImdbID    string `json:"imdbId"`
	Body      string `json:"body"`
	Rating    int    `json:"rating"`
	CreatedBy string `json:"createdBy,omitempty"`
}

const (
	MinRating = 1
	MaxRating = 5
)

func (r Review) Validate() error {
	if strings.TrimSpace(r.ImdbID) == "" {
		return fmt.Errorf("%w: imdbId is required", ErrInvalidReview)
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidReview, MinRating, MaxRating)
	}
	return nil
}

type Movie struct {
	ImdbID      string   `json:"imdbId"`
	Title       string   `json:"title"`
	Poster      string   `json:"poster,omitempty"`
	Rated       string   `json:"rated,omitempty"`
	TrailerLink string   `json:"trailerLink,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Backdrops   []string `json:"backdrops,omitempty"`
	Plot        string   `json:"plot,omitempty"`
	Director    string   `json:"director,omitempty"`
	Actors      []string `json:"actors,omitempty"`
	ReleaseDate string   `json:"releaseDate,omitempty"`
	Reviews     []Review `json:"reviewIds,omitempty"`
}

type Movies []Movie

// FilterByTitle keeps the movies whose title contains query, case-insensitively.
// An empty query returns the receiver.
func (m Movies) FilterByTitle(query string) Movies {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return m
	}

	out := make(Movies, 0, len(m))
	for _, movie := range m {
		if strings.Contains(strings.ToLower(movie.Title), query) {
			out = append(out, movie)
		}
	}
	return out
}

// GenreMovies maps a genre name to the movies listed under it.
type GenreMovies map[string]Movies
