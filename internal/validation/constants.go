package validation

// Field error messages shown in the admin forms
const (
	MsgRequired        = "Este campo es obligatorio"
	MsgInvalidEmail    = "Correo electrónico inválido"
	MsgInvalidURL      = "URL inválida"
	MsgInvalidJobType  = "Tipo de empleo inválido"
	MsgInvalidCategory = "Categoría inválida"
	MsgMaxLengthFmt    = "Debe tener como máximo %s caracteres"
	MsgInvalidValue    = "Valor inválido"
	MsgInvalidRequest  = "Formato de solicitud inválido"
)
