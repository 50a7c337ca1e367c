package setup

import (
	"context"
	"net/http"

	"github.com/IsaacDSC/cinecritique/cmd/setup/httpsvc"
	"github.com/IsaacDSC/cinecritique/internal/app/catalogapp"
	"github.com/IsaacDSC/cinecritique/internal/app/health"
	"github.com/IsaacDSC/cinecritique/internal/app/userapp"
	"github.com/IsaacDSC/cinecritique/internal/backend"
	"github.com/IsaacDSC/cinecritique/internal/catalog"
	"github.com/IsaacDSC/cinecritique/internal/cfg"
	"github.com/IsaacDSC/cinecritique/internal/kvstore"
	"github.com/IsaacDSC/cinecritique/pkg/auth"
	"github.com/IsaacDSC/cinecritique/pkg/cachemanager"
	"github.com/IsaacDSC/cinecritique/pkg/httpadapter"
	"github.com/IsaacDSC/cinecritique/pkg/httpclient"
)

// Routes wires the backend client, the view cache and the orchestrator into the
// gateway route table.
func Routes(env cfg.Config, store kvstore.Store) []httpadapter.HttpHandle {
	client := backend.NewClient(env.Backend.BaseURL, httpclient.NewHTTPClientWithLogging(env.Backend.Timeout))

	cache := cachemanager.NewStrategy(env.Cache.Prefix, store,
		cachemanager.WithTTL(env.Cache.DefaultTTL),
		cachemanager.WithPerUserKeys(env.Cache.PerUser),
	)

	orchestrator := catalog.NewOrchestrator(cache, client,
		catalog.WithConcurrency(env.Catalog.FetchConcurrency),
		catalog.WithRefreshTimeout(env.Catalog.RefreshTimeout),
	)

	admin := auth.NewBasicAuth(env.Admin.Users())

	return []httpadapter.HttpHandle{
		health.GetBackendHealthHandler(client),

		catalogapp.GetHome(orchestrator),
		catalogapp.GetGenres(orchestrator),
		catalogapp.GetGenre(client),
		catalogapp.GetMovie(client),
		catalogapp.GetBestRated(orchestrator),
		catalogapp.GetCacheStatus(orchestrator, admin),

		userapp.GetFavorites(client),
		userapp.AddFavorite(client),
		userapp.RemoveFavorite(client),
		userapp.GetRatedMovies(client, env.Catalog.FetchConcurrency),
		userapp.GetRecommendations(client),
		userapp.CreateReview(client),
		userapp.DeleteReview(client),
	}
}

// StartServer opens the configured store and starts the API. The returned closer
// releases the store after the server stopped.
func StartServer(ctx context.Context, env cfg.Config) (*http.Server, Closer, error) {
	store, closeStore, err := NewStore(ctx, env.Cache)
	if err != nil {
		return nil, closeStore, err
	}

	server := httpsvc.StartHttpServer(ctx, env, Routes(env, store), env.ApiPort.String())

	return server, closeStore, nil
}
