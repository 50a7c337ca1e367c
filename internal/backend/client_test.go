package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IsaacDSC/cinecritique/internal/domain"
	"github.com/IsaacDSC/cinecritique/pkg/auth"
	"github.com/IsaacDSC/cinecritique/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/api/", httpclient.NewHTTPClientWithLogging(5*time.Second))
}

func TestClient_AllMovies(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/movies/paginated", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[{"imdbId":"tt0133093","title":"The Matrix","genres":["Action"]}]`))
	})

	movies, err := client.AllMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "The Matrix", movies[0].Title)
	assert.Equal(t, []string{"Action"}, movies[0].Genres)
}

func TestClient_AllGenres_SortedNames(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/movies/genre", r.URL.Path)
		w.Write([]byte(`{"Drama":12,"Action":{"count":3},"Comedy":null}`))
	})

	genres, err := client.AllGenres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Action", "Comedy", "Drama"}, genres)
}

func TestClient_MoviesByGenre_EscapesPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/movies/genre/Science%20Fiction", r.URL.EscapedPath())
		w.Write([]byte(`[{"imdbId":"tt0083658","title":"Blade Runner"}]`))
	})

	movies, err := client.MoviesByGenre(context.Background(), "Science Fiction")
	require.NoError(t, err)
	assert.Len(t, movies, 1)
}

func TestClient_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: domain.ErrMovieNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: domain.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: domain.ErrUnauthorized},
		{name: "server error", status: http.StatusBadGateway, wantErr: domain.ErrBackendUnavailable},
		{name: "bad request", status: http.StatusBadRequest, wantErr: domain.ErrRejected},
		{name: "conflict", status: http.StatusConflict, wantErr: domain.ErrRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			})

			_, err := client.Movie(context.Background(), "tt0000000")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.StatusCode)
			assert.Equal(t, "nope", se.Body)
		})
	}
}

func TestClient_TransportErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, httpclient.NewHTTPClientWithLogging(time.Second))
	_, err := client.BestRated(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestClient_CreateReviewConflict(t *testing.T) {
	ctx := auth.WithToken(context.Background(), "token-123")
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "review already exists", http.StatusConflict)
	})

	_, err := client.CreateReview(ctx, domain.Review{ImdbID: "tt0133093", Rating: 4})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRejected)
	assert.NotErrorIs(t, err, domain.ErrBackendUnavailable)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.StatusCode)
}

func TestClient_Available(t *testing.T) {
	up := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/movies", r.URL.Path)
		w.Write([]byte(`[]`))
	})
	assert.True(t, up.Available(context.Background()))

	down := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.False(t, down.Available(context.Background()))
}

func TestClient_UserCallsForwardToken(t *testing.T) {
	ctx := auth.WithToken(context.Background(), "token-123")

	t.Run("missing token", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("backend must not be called without a token")
		})
		_, err := client.Favorites(context.Background())
		assert.ErrorIs(t, err, domain.ErrMissingAccessToken)
	})

	t.Run("add favorite plain text answer", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/users/favorites/add", r.URL.Path)
			assert.Equal(t, "tt0133093", r.URL.Query().Get("imdbId"))
			assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
			w.Write([]byte("Movie added to favorites successfully."))
		})

		msg, err := client.AddFavorite(ctx, "tt0133093")
		require.NoError(t, err)
		assert.Equal(t, "Movie added to favorites successfully.", msg)
	})

	t.Run("remove favorite json string answer", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/users/favorites/remove", r.URL.Path)
			w.Write([]byte(`"Movie removed from favorites successfully."`))
		})

		msg, err := client.RemoveFavorite(ctx, "tt0133093")
		require.NoError(t, err)
		assert.Equal(t, "Movie removed from favorites successfully.", msg)
	})

	t.Run("create review", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/reviews/create", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var review domain.Review
			require.NoError(t, json.NewDecoder(r.Body).Decode(&review))
			assert.Equal(t, domain.Review{ImdbID: "tt0133093", Body: "Great", Rating: 5}, review)

			w.Write([]byte(`{"id":"r-1"}`))
		})

		out, err := client.CreateReview(ctx, domain.Review{ImdbID: "tt0133093", Body: "Great", Rating: 5})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"r-1"}`, string(out))
	})

	t.Run("create review plain text answer", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Review created"))
		})

		out, err := client.CreateReview(ctx, domain.Review{ImdbID: "tt1", Rating: 3})
		require.NoError(t, err)
		assert.JSONEq(t, `"Review created"`, string(out))
	})

	t.Run("rated movie ids", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/users/rated-movies", r.URL.Path)
			w.Write([]byte(`["tt1","tt2"]`))
		})

		ids, err := client.RatedMovieIDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"tt1", "tt2"}, ids)
	})

	t.Run("recommendations", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/ai/recommendation", r.URL.Path)
			w.Write([]byte(`[{"imdbId":"tt3","title":"Heat"}]`))
		})

		movies, err := client.Recommendations(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Heat", movies[0].Title)
	})

	t.Run("delete review", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/reviews/remove", r.URL.Path)
			assert.Equal(t, "tt3", r.URL.Query().Get("imdbId"))
			w.Write([]byte("Review deleted"))
		})

		msg, err := client.DeleteReview(ctx, "tt3")
		require.NoError(t, err)
		assert.Equal(t, "Review deleted", msg)
	})
}
