package bootstrap

import (
	"log/slog"
	"strings"

	"github.com/dewinson2/MJCL/internal/config"
	"github.com/dewinson2/MJCL/internal/logger"
)

// SetupLogger installs the default logger from the application config and
// reports the settings worth a second look.
func SetupLogger(cfg *config.Config, version string) {
	// Source locations only help while developing
	env := strings.ToLower(cfg.Environment)
	addSource := env == "dev" || env == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		version,
		cfg.Environment,
		addSource,
	))

	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", version)

	slog.Debug(LogMsgConfigLoaded,
		"port", cfg.Port,
		"database", cfg.HasDatabase(),
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"redis", cfg.RedisURL != "",
		"slug_max_attempts", cfg.SlugMaxAttempts)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}
}
