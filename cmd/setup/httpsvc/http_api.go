package httpsvc

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/IsaacDSC/cinecritique/cmd/setup/middleware"
	"github.com/IsaacDSC/cinecritique/internal/app/health"
	"github.com/IsaacDSC/cinecritique/internal/cfg"
	"github.com/IsaacDSC/cinecritique/pkg/auth"
	"github.com/IsaacDSC/cinecritique/pkg/httpadapter"
	"github.com/IsaacDSC/cinecritique/pkg/logs"
)

// NewHandler mounts routes plus ping behind CORS, request logging and bearer extraction.
func NewHandler(env cfg.Config, routes []httpadapter.HttpHandle) http.Handler {
	mux := http.NewServeMux()

	routes = append(routes, health.GetHealthCheckHandler())

	for _, route := range routes {
		mux.HandleFunc(route.Path, route.Handler)
	}

	cors := middleware.DefaultCORSConfig()
	if len(env.AllowedOrigins) > 0 {
		cors.AllowedOrigins = env.AllowedOrigins
	}

	return middleware.CORSMiddlewareWithConfig(cors)(
		middleware.LoggerMiddleware(
			auth.BearerMiddleware(mux),
		),
	)
}

// StartHttpServer serves in the background. The write timeout leaves room for a full
// catalog refresh.
func StartHttpServer(ctx context.Context, env cfg.Config, routes []httpadapter.HttpHandle, port string) *http.Server {
	writeTimeout := env.Catalog.RefreshTimeout + 5*time.Second
	if env.Catalog.RefreshTimeout <= 0 {
		writeTimeout = time.Minute
	}

	server := &http.Server{
		Addr:         port,
		Handler:      NewHandler(env, routes),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	logs.Info("Starting API server", "addr", port)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Error("API server error", "error", err)
		}
	}()

	return server
}
