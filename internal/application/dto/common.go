package dto

// ErrorResponse is the uniform failure envelope: every failed mutation
// returns success=false plus a human-readable message. Storage internals
// are never echoed here.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// DeleteResponse is the envelope for successful deletes.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
