package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"foodhub-support/config"
	"foodhub-support/pkg/log"
)

// ContextManager is the interface for per-conversation session state.
type ContextManager interface {
	Record(conversationID, customerID string, speaker, text string) SessionContext
	Get(conversationID string) (SessionContext, bool)
	SetLastOrderID(conversationID, orderID string)
	Clear(conversationID string) bool
	Lock(conversationID string)
	Unlock(conversationID string)
}

// Manager owns all SessionContexts, keyed by conversation id. Idle sessions
// are evicted by the expirable LRU after the configured timeout; eviction
// destroys history.
type Manager struct {
	l        log.Logger
	sessions *expirable.LRU[string, *SessionContext]

	// mu guards the sessions cache and the contexts it holds. Turn-level
	// serialization is separate: locks below hold one refcounted mutex per
	// conversation so turns for different conversations proceed in
	// parallel while turns for the same conversation are serialized. Lock
	// lifetime is tied to in-flight turns, not to the session cache, so an
	// idle eviction can never strand a held lock.
	mu     sync.RWMutex
	lockMu sync.Mutex
	locks  map[string]*turnLock
}

// Ensure Manager implements ContextManager interface
var _ ContextManager = (*Manager)(nil)

// New creates a session Manager from config.
func New(l log.Logger, cfg config.SessionConfig) *Manager {
	m := &Manager{
		l:     l,
		locks: map[string]*turnLock{},
	}

	maxSessions := cfg.MaxSessions
	if maxSessions <= 0 {
		maxSessions = 10000
	}
	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = 30 * time.Minute
	}

	m.sessions = expirable.NewLRU[string, *SessionContext](maxSessions, nil, idle)
	return m
}
