package http

import (
	"time"

	"foodhub-support/internal/chat"
	"foodhub-support/internal/model"
)

// --- Request DTOs ---

type submitTurnReq struct {
	ConversationID string `json:"conversation_id" binding:"omitempty,uuid"`
	CustomerID     string `json:"customer_id"     binding:"required,min=1,max=64"`
	Text           string `json:"text"            binding:"required,min=1,max=2000"`
}

func (r submitTurnReq) validate() error { return nil }

func (r submitTurnReq) toInput() chat.TurnInput {
	return chat.TurnInput{
		ConversationID: r.ConversationID,
		Text:           r.Text,
	}
}

func (r submitTurnReq) scope() model.Scope {
	return model.Scope{CustomerID: r.CustomerID}
}

// --- Response DTOs ---

type submitTurnResp struct {
	ConversationID string `json:"conversation_id"`
	Reply          string `json:"reply"`
	Intent         string `json:"intent,omitempty"`
	Blocked        bool   `json:"blocked"`
}

func (h *handler) newSubmitTurnResp(out chat.TurnOutput) submitTurnResp {
	return submitTurnResp{
		ConversationID: out.ConversationID,
		Reply:          out.Reply,
		Intent:         out.Intent,
		Blocked:        out.Blocked,
	}
}

type utteranceResp struct {
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	TurnIndex int       `json:"turn_index"`
	Timestamp time.Time `json:"timestamp"`
}

type conversationResp struct {
	ConversationID string          `json:"conversation_id"`
	MessageCount   int             `json:"message_count"`
	LastOrderID    string          `json:"last_order_id,omitempty"`
	History        []utteranceResp `json:"history"`
}

func (h *handler) newConversationResp(out chat.ConversationOutput) conversationResp {
	history := make([]utteranceResp, len(out.History))
	for i, u := range out.History {
		history[i] = utteranceResp{
			Speaker:   string(u.Speaker),
			Text:      u.Text,
			TurnIndex: u.TurnIndex,
			Timestamp: u.Timestamp,
		}
	}
	return conversationResp{
		ConversationID: out.ConversationID,
		MessageCount:   out.MessageCount,
		LastOrderID:    out.LastOrderID,
		History:        history,
	}
}
