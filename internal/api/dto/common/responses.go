package common

// SuccessResponse is the body returned by both relay endpoints on success.
// The honeypot path returns it too, so automated submitters can't tell they
// were detected.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body returned for every failure. Only the public
// message crosses the boundary; upstream detail stays in the server log.
type ErrorResponse struct {
	Error string `json:"error"`
}

// IgnoredResponse acknowledges a webhook event that is outside the supported
// allow-list without processing it.
type IgnoredResponse struct {
	Received bool `json:"received"`
	Ignored  bool `json:"ignored"`
}

// NewSuccessResponse creates a new successful API response
func NewSuccessResponse() SuccessResponse {
	return SuccessResponse{Success: true}
}

// NewErrorResponse creates a new error API response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewIgnoredResponse creates an acknowledgement for an unsupported event
func NewIgnoredResponse() IgnoredResponse {
	return IgnoredResponse{Received: true, Ignored: true}
}
