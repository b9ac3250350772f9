package job

// MaxWriteAttempts bounds how many times a write is retried after storage
// reports a slug unique violation.
const MaxWriteAttempts = 3

// User-facing messages
const (
	MsgMissingFields = "Todos los campos requeridos deben ser completados."
	MsgCreated       = "Empleo creado exitosamente"
	MsgUpdated       = "Empleo actualizado exitosamente"
	MsgDeleted       = "Empleo eliminado exitosamente"
	MsgNotFound      = "El empleo no existe"
	MsgSlugConflict  = "No se pudo asignar un slug único al empleo"
	MsgCreateFailed  = "Error desconocido al crear el empleo"
	MsgUpdateFailed  = "Error desconocido al actualizar el empleo"
	MsgDeleteFailed  = "Error desconocido al eliminar el empleo"
)

// Log messages
const (
	LogMsgListFailed     = "Failed to list job postings"
	LogMsgGetFailed      = "Failed to get job posting"
	LogMsgSlugRetry      = "Slug taken at write time, regenerating"
	LogMsgSlugCheckError = "Failed to check submitted slug, keeping it"
	LogMsgWriteFailed    = "Job posting write failed"
)
