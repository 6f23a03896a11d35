package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"foodhub-support/internal/guardrail"
	"foodhub-support/internal/model"
	"foodhub-support/internal/router"
	"foodhub-support/pkg/llmprovider"
)

const etaFormat = "Monday, Jan 2 at 3:04 PM"

// factsPayload is the FACTS block serialized into the prompt. It is the
// composer's only source of order data.
type factsPayload struct {
	OrderID           string `json:"order_id"`
	Status            string `json:"status"`
	StatusPhrase      string `json:"status_phrase"`
	EstimatedDelivery string `json:"estimated_delivery"`
	PaymentStatus     string `json:"payment_status"`
	PaymentAmount     string `json:"payment_amount"`
}

func newFactsPayload(fact model.OrderFact) factsPayload {
	return factsPayload{
		OrderID:           fact.OrderID,
		Status:            fact.Status,
		StatusPhrase:      statusPhrase(fact.Status),
		EstimatedDelivery: fact.EstimatedDelivery.Format(etaFormat),
		PaymentStatus:     fact.PaymentStatus,
		PaymentAmount:     fmt.Sprintf("$%.2f", fact.PaymentAmount),
	}
}

func statusPhrase(status string) string {
	if phrase, ok := statusPhrases[status]; ok {
		return phrase
	}
	return status
}

// compose turns retrieved facts into the customer-facing reply. The draft
// comes from the model when one is reachable, and from a deterministic
// template otherwise; either way the draft is grounding-checked against the
// facts and then passed through the output guardrails. The returned bool is
// true when the output guard refused the draft.
func (uc *implUseCase) compose(ctx context.Context, intent router.Intent, question string, fact model.OrderFact, history []model.Utterance) (string, bool) {
	draft := uc.draft(ctx, intent, question, fact, history)

	if !grounded(draft, intent, fact) {
		uc.l.Warnf(ctx, "compose: draft failed grounding check, using template: order=%s", fact.OrderID)
		draft = templateReply(intent, fact)
	}

	verdict := uc.guard.Check(draft, guardrail.DirectionOutput)
	if verdict.Blocked() {
		uc.l.Warnf(ctx, "compose: output guard blocked draft: categories=%v", verdict.Categories)
		return replyRefusalOutput, true
	}

	return verdict.Released(), false
}

// draft asks the model for a reply constrained to the FACTS block. Any model
// failure falls back to the deterministic template; the facts are already in
// hand, so a reply is always possible.
func (uc *implUseCase) draft(ctx context.Context, intent router.Intent, question string, fact model.OrderFact, history []model.Utterance) string {
	payload, err := json.Marshal(newFactsPayload(fact))
	if err != nil {
		return templateReply(intent, fact)
	}

	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, u := range history {
		role := "user"
		if u.Speaker == model.SpeakerAssistant {
			role = "assistant"
		}
		messages = append(messages, llmprovider.Message{Role: role, Text: u.Text})
	}
	messages = append(messages, llmprovider.Message{Role: "user", Text: question})

	req := &llmprovider.Request{
		SystemInstruction: fmt.Sprintf("%s\n\nFACTS:\n%s", systemPrompt, payload),
		Messages:          messages,
		Temperature:       composeTemperature,
		MaxTokens:         composeMaxTokens,
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "draft: generation failed, using template: %v", err)
		return templateReply(intent, fact)
	}

	return strings.TrimSpace(resp.Text)
}

// grounded reports whether the draft sticks to the retrieved facts: it must
// mention the order it answers for, a status answer must use the stored
// status phrasing, and no draft may claim a status the order is not in.
func grounded(draft string, intent router.Intent, fact model.OrderFact) bool {
	if draft == "" {
		return false
	}
	lower := strings.ToLower(draft)
	if !strings.Contains(lower, strings.ToLower(fact.OrderID)) {
		return false
	}
	want := statusPhrase(fact.Status)
	if intent.Name == router.IntentOrderStatus && !strings.Contains(lower, want) {
		return false
	}
	for status, phrase := range statusPhrases {
		if status == fact.Status {
			continue
		}
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	return true
}

// templateReply renders the facts directly, one shape per intent.
func templateReply(intent router.Intent, fact model.OrderFact) string {
	switch intent.Name {
	case router.IntentDeliveryETA:
		return fmt.Sprintf("Order #%s is estimated to arrive by %s.",
			fact.OrderID, fact.EstimatedDelivery.Format(etaFormat))
	case router.IntentPaymentInfo:
		return fmt.Sprintf("Payment for order #%s is %s ($%.2f).",
			fact.OrderID, fact.PaymentStatus, fact.PaymentAmount)
	default:
		return fmt.Sprintf("Your order #%s is currently %s. Estimated delivery: %s.",
			fact.OrderID, statusPhrase(fact.Status), fact.EstimatedDelivery.Format(etaFormat))
	}
}
