package http

import (
	"foodhub-support/internal/chat"
	"foodhub-support/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	SubmitTurn(c interface{})
	ConversationDetail(c interface{})
	ClearConversation(c interface{})
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
