package handlers

// API error codes returned in JSON { "error": "...", "code": "..." } for
// stable client handling.
const (
	ErrCodeInvalidRequest     = "invalid_request"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeForbidden          = "forbidden"
	ErrCodeNotFound           = "not_found"
	ErrCodeConflict           = "conflict"
	ErrCodeInternal           = "internal_error"
)
