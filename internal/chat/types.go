package chat

import "foodhub-support/internal/model"

// TurnInput is one user utterance submitted to the engine.
// CustomerID is carried in model.Scope, not here.
type TurnInput struct {
	ConversationID string // empty on the first turn; the engine mints one
	Text           string
}

// TurnOutput is the engine's reply for one turn.
type TurnOutput struct {
	ConversationID string
	Reply          string
	Intent         string
	Blocked        bool // true when a guardrail refusal replaced the reply
}

// ConversationOutput is a read-only snapshot of one conversation.
type ConversationOutput struct {
	ConversationID string
	MessageCount   int
	LastOrderID    string
	History        []model.Utterance
}
