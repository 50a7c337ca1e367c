package userapp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/IsaacDSC/cinecritique/internal/app/respond"
	"github.com/IsaacDSC/cinecritique/internal/domain"
	"github.com/IsaacDSC/cinecritique/pkg/auth"
	"github.com/IsaacDSC/cinecritique/pkg/httpadapter"
	"golang.org/x/sync/errgroup"
)

// Users is the token-authenticated part of the backend. The caller's bearer token
// travels in the context.
type Users interface {
	Favorites(ctx context.Context) (domain.Movies, error)
	AddFavorite(ctx context.Context, imdbID string) (string, error)
	RemoveFavorite(ctx context.Context, imdbID string) (string, error)
	RatedMovieIDs(ctx context.Context) ([]string, error)
	Movie(ctx context.Context, imdbID string) (domain.Movie, error)
	Recommendations(ctx context.Context) (domain.Movies, error)
	CreateReview(ctx context.Context, review domain.Review) (json.RawMessage, error)
	DeleteReview(ctx context.Context, imdbID string) (string, error)
}

type messageResponse struct {
	Message string `json:"message"`
}

func GetFavorites(users Users) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/users/favorites",
		Handler: auth.RequireToken(func(w http.ResponseWriter, r *http.Request) {
			movies, err := users.Favorites(r.Context())
			if err != nil {
				respond.Error(w, r, err, "failed to load favorites")
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, nonNil(movies))
		}),
	}
}

func AddFavorite(users Users) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/users/favorites/{imdbId}",
		Handler: auth.RequireToken(func(w http.ResponseWriter, r *http.Request) {
			msg, err := users.AddFavorite(r.Context(), r.PathValue("imdbId"))
			if err != nil {
				respond.Error(w, r, err, "failed to add favorite")
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, messageResponse{Message: msg})
		}),
	}
}

func RemoveFavorite(users Users) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "DELETE /api/v1/users/favorites/{imdbId}",
		Handler: auth.RequireToken(func(w http.ResponseWriter, r *http.Request) {
			msg, err := users.RemoveFavorite(r.Context(), r.PathValue("imdbId"))
			if err != nil {
				respond.Error(w, r, err, "failed to remove favorite")
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, messageResponse{Message: msg})
		}),
	}
}

// GetRatedMovies resolves the ids the user rated into movies, at most limit lookups
// in flight. Any failed lookup fails the request.
func GetRatedMovies(users Users, limit int) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/users/rated-movies",
		Handler: auth.RequireToken(func(w http.ResponseWriter, r *http.Request) {
			movies, err := ratedMovies(r.Context(), users, limit)
			if err != nil {
				respond.Error(w, r, err, "failed to load rated movies")
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, movies)
		}),
	}
}

func ratedMovies(ctx context.Context, users Users, limit int) (domain.Movies, error) {
	ids, err := users.RatedMovieIDs(ctx)
	if err != nil {
		return nil, err
	}

	movies := make(domain.Movies, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, id := range ids {
		g.Go(func() error {
			movie, err := users.Movie(gctx, id)
			if err != nil {
				return fmt.Errorf("resolve rated movie %s: %w", id, err)
			}
			movies[i] = movie
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return movies, nil
}

func GetRecommendations(users Users) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/users/recommendations",
		Handler: auth.RequireToken(func(w http.ResponseWriter, r *http.Request) {
			movies, err := users.Recommendations(r.Context())
			if err != nil {
				respond.Error(w, r, err, "failed to load recommendations")
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, nonNil(movies))
		}),
	}
}

func CreateReview(users Users) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/reviews",
		Handler: auth.RequireToken(func(w http.ResponseWriter, r *http.Request) {
			var review domain.Review

			defer r.Body.Close()
			if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
				httpadapter.WriteError(w, http.StatusBadRequest, "invalid review payload")
				return
			}

			review.ImdbID = strings.TrimSpace(review.ImdbID)
			if err := review.Validate(); err != nil {
				httpadapter.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}

			created, err := users.CreateReview(r.Context(), review)
			if err != nil {
				respond.Error(w, r, err, "failed to create review")
				return
			}

			httpadapter.WriteJSON(w, http.StatusCreated, created)
		}),
	}
}

func DeleteReview(users Users) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "DELETE /api/v1/reviews/{imdbId}",
		Handler: auth.RequireToken(func(w http.ResponseWriter, r *http.Request) {
			msg, err := users.DeleteReview(r.Context(), r.PathValue("imdbId"))
			if err != nil {
				respond.Error(w, r, err, "failed to delete review")
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, messageResponse{Message: msg})
		}),
	}
}

func nonNil(m domain.Movies) domain.Movies {
	if m == nil {
		return domain.Movies{}
	}
	return m
}
