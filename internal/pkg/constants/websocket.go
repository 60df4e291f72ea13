package constants

// WebSocket event types for the ride chat channel
const (
	EventJoin    = "join"
	EventMessage = "message"
	EventStatus  = "status"
	EventError   = "error"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "INVALID_FORMAT"
	ErrorUnauthorized  = "UNAUTHORIZED"
	ErrorInternal      = "INTERNAL_ERROR"
)
