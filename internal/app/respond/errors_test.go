package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IsaacDSC/cinecritique/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: domain.ErrMissingAccessToken, want: http.StatusUnauthorized},
		{err: fmt.Errorf("fetch favorites: %w", domain.ErrUnauthorized), want: http.StatusUnauthorized},
		{err: fmt.Errorf("fetch movie: %w", domain.ErrMovieNotFound), want: http.StatusNotFound},
		{err: fmt.Errorf("%w: rating", domain.ErrInvalidReview), want: http.StatusBadRequest},
		{err: fmt.Errorf("create review: %w", domain.ErrRejected), want: http.StatusBadRequest},
		{err: domain.ErrBackendUnavailable, want: http.StatusBadGateway},
		{err: assert.AnError, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestError(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/favorites", nil)

	Error(rr, req, domain.ErrUnauthorized, "failed to load favorites")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, `Bearer realm="cinecritique"`, rr.Header().Get("WWW-Authenticate"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "failed to load favorites", body["error"])
}
