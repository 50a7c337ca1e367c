package catalogapp

import (
	"context"
	"net/http"
	"strings"

	"github.com/IsaacDSC/cinecritique/internal/app/respond"
	"github.com/IsaacDSC/cinecritique/internal/catalog"
	"github.com/IsaacDSC/cinecritique/internal/domain"
	"github.com/IsaacDSC/cinecritique/pkg/auth"
	"github.com/IsaacDSC/cinecritique/pkg/cachemanager"
	"github.com/IsaacDSC/cinecritique/pkg/httpadapter"
	"github.com/IsaacDSC/cinecritique/pkg/queryparser"
)

type Catalog interface {
	Home(ctx context.Context, query string) catalog.HomeView
	Genres(ctx context.Context) catalog.GenresView
	BestRated(ctx context.Context) (domain.Movies, error)
	Status(ctx context.Context) []cachemanager.Status
}

// MovieSource serves the uncached, live lookups.
type MovieSource interface {
	Movie(ctx context.Context, imdbID string) (domain.Movie, error)
	MoviesByGenre(ctx context.Context, genre string) (domain.Movies, error)
}

type homeQuery struct {
	Q string `query:"q"`
}

func GetHome(c Catalog) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/home",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			var q homeQuery
			if err := queryparser.ParseQueryParams(r.URL.Query(), &q); err != nil {
				httpadapter.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, c.Home(r.Context(), q.Q))
		},
	}
}

func GetGenres(c Catalog) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/genres",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			httpadapter.WriteJSON(w, http.StatusOK, c.Genres(r.Context()))
		},
	}
}

func GetGenre(source MovieSource) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/genres/{genre}",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			genre := strings.TrimSpace(r.PathValue("genre"))
			if genre == "" {
				httpadapter.WriteError(w, http.StatusBadRequest, "genre is required")
				return
			}

			movies, err := source.MoviesByGenre(r.Context(), genre)
			if err != nil {
				respond.Error(w, r, err, "failed to load genre")
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, map[string]any{
				"genre":  genre,
				"movies": movies,
			})
		},
	}
}

func GetMovie(source MovieSource) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/movies/{imdbId}",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			movie, err := source.Movie(r.Context(), r.PathValue("imdbId"))
			if err != nil {
				respond.Error(w, r, err, "failed to load movie")
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, movie)
		},
	}
}

func GetBestRated(c Catalog) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/movies/bestrated",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			movies, err := c.BestRated(r.Context())
			if err != nil {
				respond.Error(w, r, err, "failed to load best rated movies")
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, movies)
		},
	}
}

// GetCacheStatus reports the catalog keys. Guarded by basic auth when configured.
func GetCacheStatus(c Catalog, admin *auth.BasicAuth) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/cache/status",
		Handler: admin.Middleware(func(w http.ResponseWriter, r *http.Request) {
			httpadapter.WriteJSON(w, http.StatusOK, c.Status(r.Context()))
		}),
	}
}
