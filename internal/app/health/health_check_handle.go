package health

import (
	"context"
	"net/http"

	"github.com/IsaacDSC/cinecritique/pkg/ctxlogger"
	"github.com/IsaacDSC/cinecritique/pkg/httpadapter"
)

type BackendProbe interface {
	Available(ctx context.Context) bool
}

func GetHealthCheckHandler() httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/ping",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("pong"))
		},
	}
}

// GetBackendHealthHandler answers 503 while the movie backend is unreachable.
func GetBackendHealthHandler(probe BackendProbe) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/health/backend",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			available := probe.Available(r.Context())
			status := http.StatusOK
			if !available {
				ctxlogger.GetLogger(r.Context()).Warn("backend unavailable")
				status = http.StatusServiceUnavailable
			}

			httpadapter.WriteJSON(w, status, map[string]bool{"available": available})
		},
	}
}
