package repository

import "errors"

var (
	// ErrStoreUnavailable marks transport-level failures (timeout,
	// connection loss). Retryable within a turn.
	ErrStoreUnavailable = errors.New("order store unavailable")
)
