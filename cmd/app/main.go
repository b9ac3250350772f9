package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dewinson2/MJCL/internal/bootstrap"
	"github.com/dewinson2/MJCL/internal/config"
	"github.com/dewinson2/MJCL/internal/handler"
	"github.com/dewinson2/MJCL/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg, handler.ResolvedVersion())

	if err := run(cfg); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	responseCache, redisCache, err := bootstrap.InitializeCache(ctx, cfg)
	if err != nil {
		store.Close()
		return err
	}

	bus := bootstrap.InitializeEventSystem(responseCache)
	repos := bootstrap.InitializeRepositories(store.Client)
	services, err := bootstrap.InitializeServices(cfg, repos, bus)
	if err != nil {
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{Storage: store, Redis: redisCache})
		return err
	}

	ready := map[string]handler.Pinger{store.Name: store.Pinger}
	if redisCache != nil {
		ready[bootstrap.CacheRedis] = redisCache
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		SecureCookie:   cfg.IsProduction(),
		StorageName:    store.Name,
		Ready:          ready,
		Jobs:           services.Jobs,
		Contact:        services.Contact,
		Auth:           services.Auth,
		Cache:          responseCache,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownBudget)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Storage: store,
		Redis:   redisCache,
	})
	return err
}
