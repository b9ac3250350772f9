package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dewinson2/MJCL/internal/config"
	"github.com/dewinson2/MJCL/internal/database"
	"github.com/dewinson2/MJCL/internal/database/postgres"
	"github.com/dewinson2/MJCL/internal/handler"
	"github.com/dewinson2/MJCL/internal/storage"
	"github.com/dewinson2/MJCL/internal/storage/memory"
	"github.com/dewinson2/MJCL/internal/validation"
)

// Storage is the selected persistence backend behind the facade.
type Storage struct {
	Client *storage.Client
	// Name is StoragePostgres or StorageMemory
	Name   string
	Pinger handler.Pinger
	close  func()
}

// Close releases the backend's resources.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// InitializeStorage connects to PostgreSQL when credentials are configured
// and falls back to the in-memory store otherwise.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if !cfg.HasDatabase() {
		return initializeMemory(cfg)
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	if cfg.RunMigrations {
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedRunMigrations, err)
		}
	} else {
		slog.Info(LogMsgMigrationsSkipped)
	}

	exec := postgres.NewExecutor(pool)
	slog.Info(LogMsgUsingPostgres, "host", cfg.DBHost, "max_conns", cfg.DBMaxConns)
	return &Storage{
		Client: storage.NewClient(exec),
		Name:   StoragePostgres,
		Pinger: exec,
		close:  pool.Close,
	}, nil
}

func initializeMemory(cfg *config.Config) (*Storage, error) {
	var opts []memory.Option
	if cfg.MockSeedFile != "" {
		rows, err := memory.LoadSeedFile(cfg.MockSeedFile, validation.NewSchemaValidator(), time.Now())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadSeedFile, err)
		}
		opts = append(opts, memory.WithSeed(rows))
		slog.Info(LogMsgSeedFileLoaded, "path", cfg.MockSeedFile)
	}

	exec := memory.New(opts...)
	slog.Warn(LogMsgUsingMemory)
	return &Storage{
		Client: storage.NewClient(exec),
		Name:   StorageMemory,
		Pinger: exec,
		close:  exec.Close,
	}, nil
}
