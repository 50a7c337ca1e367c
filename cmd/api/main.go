package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IsaacDSC/cinecritique/cmd/setup"
	"github.com/IsaacDSC/cinecritique/internal/cfg"
	"github.com/IsaacDSC/cinecritique/pkg/logs"
)

const shutdownTimeout = time.Minute

func main() {
	env := cfg.Get()

	logs.SetDefault(logs.New(
		logs.WithLevel(logs.ParseLevel(env.Log.Level)),
		logs.WithJSONFormat(env.Log.JSON),
	))

	ctx := context.Background()

	server, closeStore, err := setup.StartServer(ctx, env)
	if err != nil {
		logs.Error("failed to start server", "error", err)
		os.Exit(1)
	}

	waitForShutdown(server, closeStore)
}

func waitForShutdown(server *http.Server, closeStore setup.Closer) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logs.Info("Shutting down servers...")
	started := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logs.Error("API server forced to shutdown", "error", err)
	}
	logs.Info("API server stopped", "elapsed_time", time.Since(started))

	if err := closeStore(ctx); err != nil {
		logs.Error("failed to close cache store", "error", err)
	}

	logs.Info("All servers shutdown complete", "elapsed_time", time.Since(started))
}
