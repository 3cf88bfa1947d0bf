package assistant

import "errors"

var (
	// ErrUnavailable indicates the webhook endpoint is unreachable or
	// answered with a non-success status.
	ErrUnavailable = errors.New("planning assistant unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("planning assistant request timed out")

	// ErrMalformedResponse indicates the response body could not be parsed
	// or is missing a required field of the assistant contract.
	ErrMalformedResponse = errors.New("malformed assistant response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("assistant retry attempts exhausted")
)
