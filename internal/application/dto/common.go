package dto

// ErrorResponse cuerpo de error HTTP: {"code": "...", "error": "..."}.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}
