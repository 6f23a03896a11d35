package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"foodhub-support/internal/chat"
	"foodhub-support/internal/guardrail"
	"foodhub-support/internal/model"
	"foodhub-support/internal/order"
	"foodhub-support/internal/router"
	"foodhub-support/internal/session"
)

// SubmitTurn runs one user utterance through the turn pipeline:
// input guard -> route -> retrieve -> compose -> output guard. Every policy
// block, missing parameter, lookup miss, and upstream failure is recovered
// into a fixed reply, so the conversation always gets an answer.
func (uc *implUseCase) SubmitTurn(ctx context.Context, sc model.Scope, input chat.TurnInput) (chat.TurnOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.TurnOutput{}, chat.ErrEmptyMessage
	}

	conversationID := input.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	// Turns within a conversation are serialized; different conversations
	// proceed in parallel.
	uc.sessions.Lock(conversationID)
	defer uc.sessions.Unlock(conversationID)

	uc.l.Infof(ctx, "SubmitTurn: customer=%s conversation=%s", sc.CustomerID, conversationID)

	// A conversation belongs to the customer who opened it. A mismatch is
	// indistinguishable from a conversation that never existed, so the id
	// itself leaks nothing.
	if existing, ok := uc.sessions.Get(conversationID); ok && existing.CustomerID != sc.CustomerID {
		uc.l.Warnf(ctx, "SubmitTurn: conversation owner mismatch: customer=%s conversation=%s", sc.CustomerID, conversationID)
		return chat.TurnOutput{}, chat.ErrConversationNotFound
	}

	// The user's utterance is recorded before anything can fail, so history
	// stays a faithful transcript even for blocked or abandoned turns.
	sess := uc.sessions.Record(conversationID, sc.CustomerID, string(model.SpeakerUser), text)

	verdict := uc.guard.Check(text, guardrail.DirectionInput)
	if verdict.Blocked() {
		uc.l.Infof(ctx, "SubmitTurn: input blocked: categories=%v", verdict.Categories)
		reply := uc.inputRefusal(verdict)
		uc.sessions.Record(conversationID, sc.CustomerID, string(model.SpeakerAssistant), reply)
		return chat.TurnOutput{ConversationID: conversationID, Reply: reply, Blocked: true}, nil
	}

	intent := uc.router.Route(ctx, verdict.Released(), sess.LastOrderID)
	uc.l.Debugf(ctx, "SubmitTurn: intent=%s missing_param=%v", intent.Name, intent.MissingParameter)

	reply, blocked := uc.respond(ctx, sc, conversationID, intent, verdict.Released(), sess)

	uc.sessions.Record(conversationID, sc.CustomerID, string(model.SpeakerAssistant), reply)

	return chat.TurnOutput{
		ConversationID: conversationID,
		Reply:          reply,
		Intent:         string(intent.Name),
		Blocked:        blocked,
	}, nil
}

// respond resolves the routed intent into a reply.
func (uc *implUseCase) respond(ctx context.Context, sc model.Scope, conversationID string, intent router.Intent, text string, sess session.SessionContext) (string, bool) {
	switch {
	case intent.Name == router.IntentEscalation:
		return uc.escalationReply(), false

	case intent.Name == router.IntentFarewell:
		return replyFarewell, false

	case !intent.NeedsFacts():
		return replyUnsupported, false

	case intent.MissingParameter:
		return replyMissingOrder, false
	}

	orderID, _ := intent.OrderID()

	fact, err := uc.retrieveFacts(ctx, sc, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return replyOrderNotFound, false
		}
		uc.l.Errorf(ctx, "respond: retrieval failed: %v", err)
		return replyUnavailable, false
	}

	// The order resolved concretely for this customer; later turns may
	// refer back to it without repeating the number.
	uc.sessions.SetLastOrderID(conversationID, fact.OrderID)

	// The current question was already recorded; keep it out of the history
	// slice so the composer sends it exactly once.
	history := sess.RecentHistory(uc.maxHistory)
	if n := len(history); n > 0 && history[n-1].Speaker == model.SpeakerUser && history[n-1].Text == text {
		history = history[:n-1]
	}

	return uc.compose(ctx, intent, text, fact, history)
}

func (uc *implUseCase) escalationReply() string {
	return fmt.Sprintf(replyEscalationFmt, uc.supportContact)
}

// inputRefusal picks the fixed refusal for a blocked input verdict.
func (uc *implUseCase) inputRefusal(v guardrail.Verdict) string {
	for _, c := range v.Categories {
		if c == guardrail.CategoryOffTopic {
			return replyUnsupported
		}
	}
	return replyRefusalInput
}
