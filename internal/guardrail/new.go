package guardrail

import (
	"foodhub-support/config"
	"foodhub-support/pkg/log"
)

// Checker is the interface for guardrail policy checks.
type Checker interface {
	Check(text string, direction Direction) Verdict
}

// Engine evaluates text against the ordered policy taxonomy.
// It is pure: verdicts depend only on the text, the direction, and the
// static classifier tables built at construction time.
type Engine struct {
	l      log.Logger
	input  []classifier
	output []classifier
}

// Ensure Engine implements Checker interface
var _ Checker = (*Engine)(nil)

// New creates a new guardrail Engine from config.
func New(l log.Logger, cfg config.GuardrailConfig) *Engine {
	return &Engine{
		l:      l,
		input:  buildInputClassifiers(cfg.ExtraBlockedTerms),
		output: buildOutputClassifiers(cfg.ExtraBlockedTerms),
	}
}
