package chat

import (
	"context"

	"foodhub-support/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// SubmitTurn runs one user utterance through the full turn pipeline:
	// input guardrails, intent routing, fact retrieval, grounded response
	// composition, and output guardrails. Policy blocks and lookup misses
	// are recovered into fixed replies, not surfaced as errors.
	SubmitTurn(ctx context.Context, sc model.Scope, input TurnInput) (TurnOutput, error)

	// Conversation returns the recorded state of one conversation.
	Conversation(ctx context.Context, sc model.Scope, conversationID string) (ConversationOutput, error)

	// ClearConversation drops a conversation's history and resolved state.
	ClearConversation(ctx context.Context, sc model.Scope, conversationID string) error
}
