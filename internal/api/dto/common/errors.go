package common

import "net/http"

// Define type for error codes to enforce consistency
type ErrorCode string

// Standard error codes
const (
	ErrCodeUnsupportedMediaType   ErrorCode = "UNSUPPORTED_MEDIA_TYPE"
	ErrCodePayloadTooLarge        ErrorCode = "PAYLOAD_TOO_LARGE"
	ErrCodeRateLimited            ErrorCode = "RATE_LIMITED"
	ErrCodeMalformedJSON          ErrorCode = "MALFORMED_JSON"
	ErrCodeValidation             ErrorCode = "VALIDATION_ERROR"
	ErrCodeTooManyLinks           ErrorCode = "TOO_MANY_LINKS"
	ErrCodeMissingSignature       ErrorCode = "MISSING_SIGNATURE"
	ErrCodeInvalidSignature       ErrorCode = "INVALID_SIGNATURE"
	ErrCodeInvalidSignatureFormat ErrorCode = "INVALID_SIGNATURE_FORMAT"
	ErrCodeMissingPayload         ErrorCode = "MISSING_PAYLOAD"
	ErrCodeServerMisconfigured    ErrorCode = "SERVER_MISCONFIGURED"
	ErrCodeRelayFailed            ErrorCode = "RELAY_FAILED"
	ErrCodeUnexpected             ErrorCode = "UNEXPECTED_ERROR"
)

// RequestError is a typed failure handled at the request boundary. It carries
// the HTTP status and the public-facing message for one terminal outcome.
type RequestError struct {
	Code    ErrorCode
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// The full failure taxonomy. Every request ends in success or exactly one of
// these.
var (
	ErrUnsupportedMediaType = &RequestError{ErrCodeUnsupportedMediaType, http.StatusUnsupportedMediaType, "Invalid content type."}
	ErrPayloadTooLarge      = &RequestError{ErrCodePayloadTooLarge, http.StatusRequestEntityTooLarge, "Request payload too large."}
	ErrRateLimited          = &RequestError{ErrCodeRateLimited, http.StatusTooManyRequests, "Please wait before sending another message."}
	ErrMalformedJSON        = &RequestError{ErrCodeMalformedJSON, http.StatusBadRequest, "Invalid JSON."}
	ErrTooManyLinks         = &RequestError{ErrCodeTooManyLinks, http.StatusBadRequest, "Too many links in message. Please reduce and try again."}
	ErrMissingSignature     = &RequestError{ErrCodeMissingSignature, http.StatusUnauthorized, "Missing signature."}
	ErrInvalidSignature     = &RequestError{ErrCodeInvalidSignature, http.StatusUnauthorized, "Invalid signature."}
	ErrInvalidSigFormat     = &RequestError{ErrCodeInvalidSignatureFormat, http.StatusUnauthorized, "Invalid signature format."}
	ErrMissingPayload       = &RequestError{ErrCodeMissingPayload, http.StatusBadRequest, "Missing payload."}
	ErrServerMisconfigured  = &RequestError{ErrCodeServerMisconfigured, http.StatusInternalServerError, "Server configuration error. Please try again later."}
	ErrRelayFailed          = &RequestError{ErrCodeRelayFailed, http.StatusInternalServerError, "Failed to send message. Please try again later."}
	ErrUnexpected           = &RequestError{ErrCodeUnexpected, http.StatusInternalServerError, "An unexpected error occurred. Please try again later."}
)

// NewValidationError builds a 400 with the first field error as its message.
func NewValidationError(message string) *RequestError {
	return &RequestError{ErrCodeValidation, http.StatusBadRequest, message}
}
