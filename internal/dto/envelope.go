package dto

// APIResponse is the uniform success envelope returned by every handler.
type APIResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// APIError is the uniform error envelope. It intentionally carries no
// internal detail beyond the human-readable message.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// NewAPIResponse builds a success envelope.
func NewAPIResponse(status int, message string, data any) APIResponse {
	return APIResponse{Status: status, Message: message, Data: data}
}
