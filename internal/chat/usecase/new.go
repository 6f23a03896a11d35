package usecase

import (
	"context"

	"foodhub-support/internal/chat"
	"foodhub-support/internal/guardrail"
	"foodhub-support/internal/order/repository"
	"foodhub-support/internal/router"
	"foodhub-support/internal/session"
	"foodhub-support/pkg/llmprovider"
	pkgLog "foodhub-support/pkg/log"
)

// generator is the slice of llmprovider.Manager the composer needs.
type generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l              pkgLog.Logger
	guard          guardrail.Checker
	router         router.Router
	sessions       session.ContextManager
	repo           repository.Repository
	llm            generator
	supportContact string
	maxHistory     int
}

// Ensure implUseCase implements chat.UseCase interface
var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	guard guardrail.Checker,
	rt router.Router,
	sessions session.ContextManager,
	repo repository.Repository,
	llm generator,
	supportContact string,
	maxHistory int,
) *implUseCase {
	if supportContact == "" {
		supportContact = DefaultSupportContact
	}
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &implUseCase{
		l:              l,
		guard:          guard,
		router:         rt,
		sessions:       sessions,
		repo:           repo,
		llm:            llm,
		supportContact: supportContact,
		maxHistory:     maxHistory,
	}
}
