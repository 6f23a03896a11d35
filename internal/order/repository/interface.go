package repository

import (
	"context"

	"foodhub-support/internal/model"
)

// Repository is the composed interface for the order fact store.
type Repository interface {
	OrderRepository
}

// OrderRepository defines read access to order facts. The store is treated
// as a read-only keyed lookup; this service never writes order data.
type OrderRepository interface {
	// GetOrder fetches one order snapshot. The customer id is part of the
	// lookup key: an order that exists but belongs to a different customer
	// is a miss, not a hit.
	GetOrder(ctx context.Context, opt GetOrderOptions) (model.OrderFact, error)

	// Ping verifies the store is reachable. Used at startup only; an
	// unreachable store is fatal for the process, not for a turn.
	Ping(ctx context.Context) error
}
