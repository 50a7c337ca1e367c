package catalog

import (
	"context"
	"time"

	"github.com/IsaacDSC/cinecritique/internal/domain"
)

type HomeView struct {
	Query     string        `json:"query,omitempty"`
	Movies    domain.Movies `json:"movies"`
	Results   domain.Movies `json:"results"`
	Genres    []string      `json:"genres"`
	Featured  *domain.Movie `json:"featured,omitempty"`
	Loading   bool          `json:"loading"`
	FetchedAt *time.Time    `json:"fetched_at,omitempty"`
}

type GenresView struct {
	Genres    domain.GenreMovies `json:"genres"`
	Loading   bool               `json:"loading"`
	FetchedAt *time.Time         `json:"fetched_at,omitempty"`
}

// Home builds the Home view. A failed refresh yields a loading view, never an error.
func (o *Orchestrator) Home(ctx context.Context, query string) HomeView {
	c, err := o.Load(ctx)
	if err != nil {
		return HomeView{
			Query:   query,
			Movies:  domain.Movies{},
			Results: domain.Movies{},
			Genres:  []string{},
			Loading: true,
		}
	}

	fetchedAt := c.FetchedAt.UTC()
	view := HomeView{
		Query:     query,
		Movies:    c.Movies,
		Results:   c.Movies.FilterByTitle(query),
		Genres:    c.GenreNames(),
		FetchedAt: &fetchedAt,
	}

	if len(c.Movies) > 0 {
		featured := c.Movies[o.pick(len(c.Movies))]
		view.Featured = &featured
	}

	return view
}

// Genres builds the Genres view. A failed refresh yields a loading view, never an error.
func (o *Orchestrator) Genres(ctx context.Context) GenresView {
	c, err := o.Load(ctx)
	if err != nil {
		return GenresView{Genres: domain.GenreMovies{}, Loading: true}
	}

	fetchedAt := c.FetchedAt.UTC()
	return GenresView{Genres: c.Genres, FetchedAt: &fetchedAt}
}
