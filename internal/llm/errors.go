package llm

import "errors"

var (
	// ErrUnavailable indicates the Ollama server is unreachable.
	ErrUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrBadStatus indicates the server answered with a non-success
	// HTTP status.
	ErrBadStatus = errors.New("ollama returned non-success status")

	// ErrInvalidResponse indicates the response body lacked the
	// generated-text field.
	ErrInvalidResponse = errors.New("invalid ollama response")
)
