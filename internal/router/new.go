package router

import (
	"context"

	"foodhub-support/pkg/log"
)

// Router is the interface for intent routing
type Router interface {
	Route(ctx context.Context, utterance string, lastOrderID string) Intent
}

// RuleRouter classifies user intent with deterministic pattern rules.
type RuleRouter struct {
	l log.Logger
}

// Ensure RuleRouter implements Router interface
var _ Router = (*RuleRouter)(nil)

// New creates a new RuleRouter
func New(l log.Logger) *RuleRouter {
	return &RuleRouter{l: l}
}
