package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the orders table if it does not exist. The store is
// normally populated by the order-management system; this exists for local
// development and tests.
func Migrate(ctx context.Context, db *sql.DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS orders (
			order_id           TEXT PRIMARY KEY,
			customer_id        TEXT NOT NULL,
			status             TEXT NOT NULL,
			estimated_delivery TIMESTAMP NOT NULL,
			payment_status     TEXT NOT NULL,
			payment_amount     REAL NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id);`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("order/repository/sqlite: migrate: %w", err)
	}
	return nil
}
