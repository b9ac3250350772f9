package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Query Operations
const (
	ErrMsgFailedToSelect  = "failed to select"
	ErrMsgFailedToInsert  = "failed to insert"
	ErrMsgFailedToUpdate  = "failed to update"
	ErrMsgFailedToDelete  = "failed to delete"
	ErrMsgFailedToReadRow = "failed to read row"
	ErrMsgNoRowReturned   = "insert returned no row"
)
