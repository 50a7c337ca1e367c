package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type probeFunc func(ctx context.Context) bool

func (f probeFunc) Available(ctx context.Context) bool { return f(ctx) }

func TestGetHealthCheckHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	GetHealthCheckHandler().Handler(rr, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())
}

func TestGetBackendHealthHandler(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		status    int
		body      string
	}{
		{name: "up", available: true, status: http.StatusOK, body: `{"available":true}`},
		{name: "down", available: false, status: http.StatusServiceUnavailable, body: `{"available":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := GetBackendHealthHandler(probeFunc(func(context.Context) bool { return tt.available }))

			rr := httptest.NewRecorder()
			h.Handler(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health/backend", nil))

			assert.Equal(t, tt.status, rr.Code)
			assert.JSONEq(t, tt.body, rr.Body.String())
		})
	}
}
