package usecase

import (
	"context"

	"foodhub-support/internal/chat"
	"foodhub-support/internal/model"
)

// Conversation returns a read-only snapshot of one conversation.
func (uc *implUseCase) Conversation(ctx context.Context, sc model.Scope, conversationID string) (chat.ConversationOutput, error) {
	sess, ok := uc.sessions.Get(conversationID)
	if !ok || sess.CustomerID != sc.CustomerID {
		return chat.ConversationOutput{}, chat.ErrConversationNotFound
	}

	return chat.ConversationOutput{
		ConversationID: sess.ConversationID,
		MessageCount:   sess.MessageCount(),
		LastOrderID:    sess.LastOrderID,
		History:        sess.Utterances,
	}, nil
}

// ClearConversation drops a conversation's history and resolved state.
func (uc *implUseCase) ClearConversation(ctx context.Context, sc model.Scope, conversationID string) error {
	sess, ok := uc.sessions.Get(conversationID)
	if !ok || sess.CustomerID != sc.CustomerID {
		return chat.ErrConversationNotFound
	}
	if !uc.sessions.Clear(conversationID) {
		return chat.ErrConversationNotFound
	}

	uc.l.Infof(ctx, "ClearConversation: customer=%s conversation=%s", sc.CustomerID, conversationID)
	return nil
}
