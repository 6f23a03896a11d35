package session

import (
	"sync"
	"time"

	"foodhub-support/internal/model"
)

// turnLock is one conversation's turn mutex plus the number of turns that
// currently hold or wait on it. The map entry is reclaimed only at refs==0,
// so every waiter always contends on the same mutex as the holder.
type turnLock struct {
	mu   sync.Mutex
	refs int
}

// Lock serializes turn processing for one conversation. Turns for different
// conversations are unaffected.
func (m *Manager) Lock(conversationID string) {
	m.lockMu.Lock()
	tl, ok := m.locks[conversationID]
	if !ok {
		tl = &turnLock{}
		m.locks[conversationID] = tl
	}
	tl.refs++
	m.lockMu.Unlock()

	tl.mu.Lock()
}

// Unlock releases the conversation's turn lock.
func (m *Manager) Unlock(conversationID string) {
	m.lockMu.Lock()
	tl := m.locks[conversationID]
	tl.mu.Unlock()
	tl.refs--
	if tl.refs == 0 {
		delete(m.locks, conversationID)
	}
	m.lockMu.Unlock()
}

// Record appends an utterance to the conversation's history, creating the
// session on first message. The creating customer owns the conversation;
// history is append-only and utterances are never edited after recording.
// Returns a snapshot of the updated context.
func (m *Manager) Record(conversationID, customerID string, speaker, text string) SessionContext {
	m.mu.Lock()
	defer m.mu.Unlock()

	sc := m.getOrCreateLocked(conversationID, customerID)
	sc.Utterances = append(sc.Utterances, model.Utterance{
		Speaker:   model.Speaker(speaker),
		Text:      text,
		TurnIndex: len(sc.Utterances),
		Timestamp: time.Now(),
	})
	sc.LastActive = time.Now()

	// Re-add refreshes the idle-eviction clock.
	m.sessions.Add(conversationID, sc)
	return snapshot(sc)
}

// Get returns a read-only snapshot of the conversation's context.
func (m *Manager) Get(conversationID string) (SessionContext, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sc, ok := m.sessions.Get(conversationID)
	if !ok {
		return SessionContext{}, false
	}
	return snapshot(sc), true
}

// SetLastOrderID updates the conversation's resolved referent. Callers must
// only invoke this for concrete, successfully resolved order ids — never on
// missing-parameter or blocked turns — so a clarification turn does not
// erase a previously valid referent.
func (m *Manager) SetLastOrderID(conversationID, orderID string) {
	if orderID == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sc, ok := m.sessions.Get(conversationID)
	if !ok {
		return
	}
	sc.LastOrderID = orderID
	m.sessions.Add(conversationID, sc)
}

// Clear destroys the conversation's history and referent.
func (m *Manager) Clear(conversationID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sessions.Remove(conversationID)
}

func (m *Manager) getOrCreateLocked(conversationID, customerID string) *SessionContext {
	if sc, ok := m.sessions.Get(conversationID); ok {
		return sc
	}
	sc := &SessionContext{
		ConversationID: conversationID,
		CustomerID:     customerID,
		CreatedAt:      time.Now(),
		LastActive:     time.Now(),
	}
	m.sessions.Add(conversationID, sc)
	return sc
}

// snapshot copies the context so callers read-share it without racing
// against later writes.
func snapshot(sc *SessionContext) SessionContext {
	out := *sc
	out.Utterances = make([]model.Utterance, len(sc.Utterances))
	copy(out.Utterances, sc.Utterances)
	return out
}
