package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateLayout formato de fechas aceptado en requests (expiry, rangos de consulta).
const DateLayout = "2006-01-02"
