package chat

import "errors"

// Domain-specific errors for the chat package. All of them are recovered
// inside the turn pipeline into fixed replies; SubmitTurn only returns an
// error for input it cannot recover from.
var (
	ErrEmptyMessage         = errors.New("message text is empty")
	ErrGuardrailBlocked     = errors.New("guardrail blocked the text")
	ErrUpstreamUnavailable  = errors.New("upstream dependency unavailable")
	ErrConversationNotFound = errors.New("conversation not found")
)
