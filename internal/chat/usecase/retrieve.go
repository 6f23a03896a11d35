package usecase

import (
	"context"
	"errors"
	"fmt"

	"foodhub-support/internal/chat"
	"foodhub-support/internal/model"
	"foodhub-support/internal/order"
	"foodhub-support/internal/order/repository"
)

// retrieveFacts fetches the order snapshot backing the reply. The lookup is
// scoped to the authenticated customer, so an order belonging to someone
// else surfaces as order.ErrOrderNotFound. A transient store failure is
// retried once before being reported as chat.ErrUpstreamUnavailable.
func (uc *implUseCase) retrieveFacts(ctx context.Context, sc model.Scope, orderID string) (model.OrderFact, error) {
	opt := repository.GetOrderOptions{
		OrderID:    orderID,
		CustomerID: sc.CustomerID,
	}

	fact, err := uc.repo.GetOrder(ctx, opt)
	if errors.Is(err, repository.ErrStoreUnavailable) {
		uc.l.Warnf(ctx, "retrieveFacts: store unavailable, retrying once: %v", err)
		fact, err = uc.repo.GetOrder(ctx, opt)
	}
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return model.OrderFact{}, order.ErrOrderNotFound
		}
		return model.OrderFact{}, fmt.Errorf("%w: %v", chat.ErrUpstreamUnavailable, err)
	}

	return fact, nil
}
