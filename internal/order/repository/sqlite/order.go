package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodhub-support/internal/model"
	"foodhub-support/internal/order"
	"foodhub-support/internal/order/repository"
)

// GetOrder fetches one order snapshot keyed by (order id, customer id).
// The customer filter lives in the WHERE clause, so a row belonging to a
// different customer is indistinguishable from a missing row.
func (r *implRepository) GetOrder(ctx context.Context, opt repository.GetOrderOptions) (model.OrderFact, error) {
	const query = `
		SELECT order_id, customer_id, status, estimated_delivery, payment_status, payment_amount
		FROM orders
		WHERE order_id = ? AND customer_id = ?`

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var fact model.OrderFact
	err := r.db.QueryRowContext(ctx, query, opt.OrderID, opt.CustomerID).Scan(
		&fact.OrderID, &fact.CustomerID, &fact.Status,
		&fact.EstimatedDelivery, &fact.PaymentStatus, &fact.PaymentAmount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.OrderFact{}, order.ErrOrderNotFound
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOrder"), err)
		return model.OrderFact{}, fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}

	return fact, nil
}

// Ping verifies the store is reachable.
func (r *implRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}
	return nil
}
