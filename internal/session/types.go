package session

import (
	"time"

	"foodhub-support/internal/model"
)

// SessionContext holds one conversation's state: ordered turn history plus
// the last successfully resolved order id. It lives for the duration of the
// conversation and is destroyed on idle eviction — there is no durable
// persistence of conversational state.
type SessionContext struct {
	ConversationID string
	CustomerID     string
	Utterances     []model.Utterance
	LastOrderID    string
	CreatedAt      time.Time
	LastActive     time.Time
}

// MessageCount returns the number of recorded utterances.
func (s SessionContext) MessageCount() int {
	return len(s.Utterances)
}

// RecentHistory returns up to n most recent utterances, oldest first.
func (s SessionContext) RecentHistory(n int) []model.Utterance {
	if n <= 0 || len(s.Utterances) <= n {
		return s.Utterances
	}
	return s.Utterances[len(s.Utterances)-n:]
}
