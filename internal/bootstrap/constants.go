package bootstrap

// Storage backend names reported by /version and used as /readyz keys
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
	CacheRedis      = "redis"
)

// Log messages
const (
	LogMsgStarting                 = "Starting MJCL jobs service"
	LogMsgConfigLoaded             = "Configuration loaded"
	LogMsgConfigWarning            = "Configuration warning"
	LogMsgUsingPostgres            = "Using PostgreSQL storage"
	LogMsgUsingMemory              = "Using in-memory mock storage"
	LogMsgSeedFileLoaded           = "Loaded mock seed file"
	LogMsgMigrationsSkipped        = "RUN_MIGRATIONS is false, skipping migrations"
	LogMsgUsingRedisCache          = "Using Redis response cache"
	LogMsgUsingLRUCache            = "Using in-process response cache"
	LogMsgCacheDisabled            = "Response cache disabled"
	LogMsgEventSystemInitialized   = "Event system initialized"
	LogMsgShuttingDownServer       = "Shutting down server..."
	LogMsgServerForcedShutdown     = "Server forced to shutdown"
	LogMsgClosingStorage           = "Closing storage"
	LogMsgRedisCloseFailed         = "Failed to close Redis client"
	LogMsgServerStopped            = "Server stopped"
	LogMsgAdminLoginDisabledNotice = "Admin login disabled until ADMIN_ACCESS_CODE or ADMIN_ACCESS_CODE_HASH is set"
)

// Error message prefixes
const (
	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedRunMigrations   = "failed to run migrations"
	ErrMsgFailedLoadSeedFile    = "failed to load mock seed file"
	ErrMsgFailedConnectRedis    = "failed to connect to redis"
	ErrMsgFailedCreateAuth      = "failed to create auth service"
)
