package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"mjcl-jobs"`

	// Hosted storage. DatabaseURL wins over the DB_* parts.
	DatabaseURL   string        `env:"DATABASE_URL"`
	DBUser        string        `env:"DB_USER"`
	DBPassword    string        `env:"DB_PASSWORD"`
	DBHost        string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string        `env:"DB_PORT" envDefault:"5432"`
	DBName        string        `env:"DB_NAME" envDefault:"mjcl"`
	DBMaxConns    int           `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMaxIdle     time.Duration `env:"DB_MAX_IDLE" envDefault:"5m"`
	DBMaxLife     time.Duration `env:"DB_MAX_LIFE" envDefault:"1h"`
	RunMigrations bool          `env:"RUN_MIGRATIONS" envDefault:"true"`

	// Optional JSON file replacing the built-in sample data of the in-memory store
	MockSeedFile string `env:"MOCK_SEED_FILE"`

	// Public read cache
	RedisURL  string        `env:"REDIS_URL"`
	CacheSize int           `env:"CACHE_SIZE" envDefault:"256"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Admin session
	AdminAccessCode     string        `env:"ADMIN_ACCESS_CODE"`
	AdminAccessCodeHash string        `env:"ADMIN_ACCESS_CODE_HASH"`
	SessionSecret       string        `env:"SESSION_SECRET"`
	SessionTTL          time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	SlugMaxAttempts int      `env:"SLUG_MAX_ATTEMPTS" envDefault:"10"`
	TrustedProxies  []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Load loads the configuration from the environment, after reading a .env
// file when one exists.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// HasDatabase reports whether hosted storage credentials are configured.
// Without them the in-memory store is used.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != "" || (c.DBUser != "" && c.DBPassword != "")
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// HasAdminAccess reports whether an admin access code is configured.
func (c *Config) HasAdminAccess() bool {
	return c.AdminAccessCode != "" || c.AdminAccessCodeHash != ""
}

// Validate rejects malformed values.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT value: %d", c.Port))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("invalid LOG_FORMAT value: %q", c.LogFormat))
	}
	if c.DBMaxConns < 1 {
		errs = append(errs, fmt.Errorf("invalid DB_MAX_CONNS value: %d", c.DBMaxConns))
	}
	if c.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("invalid CACHE_SIZE value: %d", c.CacheSize))
	}
	if c.SlugMaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("invalid SLUG_MAX_ATTEMPTS value: %d", c.SlugMaxAttempts))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("invalid SESSION_TTL value: %s", c.SessionTTL))
	}
	if c.HasAdminAccess() && c.SessionSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET must be set when an admin access code is configured"))
	}
	if c.SessionSecret != "" && len(c.SessionSecret) < MinSessionSecretLength {
		errs = append(errs, fmt.Errorf("SESSION_SECRET must be at least %d characters", MinSessionSecretLength))
	}

	return errors.Join(errs...)
}

// Warnings lists insecure or degraded settings worth logging at startup.
func (c *Config) Warnings() []string {
	var warnings []string
	if !c.HasDatabase() {
		warnings = append(warnings, WarnNoDatabase)
	}
	if !c.HasAdminAccess() {
		warnings = append(warnings, WarnNoAdminAccess)
	}
	if c.AdminAccessCode != "" && c.AdminAccessCodeHash == "" {
		warnings = append(warnings, WarnPlaintextAccessCode)
	}
	if c.IsProduction() && c.DatabaseURL == "" && c.HasDatabase() && c.DBHost == "localhost" {
		warnings = append(warnings, WarnLocalDatabaseInProduction)
	}
	return warnings
}

// IsProduction reports whether the environment names a production deployment.
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Environment) {
	case "prod", "production":
		return true
	}
	return false
}
