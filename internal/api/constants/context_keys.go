package constants

// Context keys used to pass values between middleware and handlers
const (
	ContextKeyRawBody   = "RawBody"
	ContextKeyRequestID = "RequestID"
)
