package bootstrap

import (
	"context"
	"log/slog"

	"github.com/dewinson2/MJCL/internal/cache"
	"github.com/dewinson2/MJCL/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  *server.Server
	Storage *Storage
	Redis   *cache.Redis
}

// GracefulShutdown stops the HTTP server first so no request is left
// without storage, then releases the backends.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Redis != nil {
		if err := components.Redis.Close(); err != nil {
			slog.Error(LogMsgRedisCloseFailed, "error", err)
		}
	}

	if components.Storage != nil {
		slog.Info(LogMsgClosingStorage, "backend", components.Storage.Name)
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
