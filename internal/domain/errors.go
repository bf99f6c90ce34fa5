package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrServerOffline indicates the star feed backend is unreachable
	ErrServerOffline = errors.New("star feed is unreachable")

	// ErrBadPayload indicates the response body was not a JSON array
	ErrBadPayload = errors.New("star feed returned an unreadable response")

	// ErrAuthFailed indicates the configured token was rejected
	ErrAuthFailed = errors.New("authentication token is invalid")
)
