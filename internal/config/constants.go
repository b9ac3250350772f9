package config

// MinSessionSecretLength is the minimum HMAC key length for session tokens.
const MinSessionSecretLength = 32

// Startup warnings
const (
	WarnNoDatabase                = "database credentials not set, using in-memory mock storage"
	WarnNoAdminAccess             = "no admin access code configured, admin routes will reject every login"
	WarnPlaintextAccessCode       = "ADMIN_ACCESS_CODE is plaintext, set ADMIN_ACCESS_CODE_HASH instead"
	WarnLocalDatabaseInProduction = "production environment is pointed at a localhost database"
)
