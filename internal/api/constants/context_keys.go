package constants

// Context keys set by middleware
const (
	ContextKeyRequestID = "RequestID"
)

// Headers read or written by middleware
const (
	HeaderRequestID = "X-Request-ID"
)
