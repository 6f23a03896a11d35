package order

import "errors"

// Domain-specific errors for the order package.
var (
	// ErrOrderNotFound covers both a genuinely unknown order id and an
	// order belonging to another customer — callers cannot tell the two
	// apart, which keeps cross-customer probing blind.
	ErrOrderNotFound = errors.New("order not found")
)
