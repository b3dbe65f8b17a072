package common

const (
	// Correlation headers, read from requests and echoed on responses.
	TraceIDHeader   = "X-Trace-Id"
	RequestIDHeader = "X-Request-Id"
)
