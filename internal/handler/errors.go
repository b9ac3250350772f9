package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgGenericServerError  = "Ocurrió un error. Inténtalo de nuevo más tarde."
	ErrMsgUnknownError        = "Error desconocido"
	ErrMsgInvalidRequestError = "Solicitud inválida. Revisa los datos enviados."
	ErrMsgInvalidRequest      = "Cuerpo de la solicitud inválido"
	ErrMsgInvalidID           = "Identificador inválido"
	ErrMsgJobNotFound         = "El empleo no existe"
	ErrMsgSlugConflict        = "El slug ya está en uso"
	ErrMsgUnauthorized        = "No autorizado"
	ErrMsgInvalidAccessCode   = "Código de acceso incorrecto"
	ErrMsgUnsupportedMedia    = "Tipo de contenido no soportado"
)

// Success messages
const (
	MsgLoggedIn  = "Sesión iniciada"
	MsgLoggedOut = "Sesión cerrada"
)
