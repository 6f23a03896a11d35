package repository

// GetOrderOptions holds the lookup key for fetching a single order.
// Both fields are required; the repository matches on the pair.
type GetOrderOptions struct {
	OrderID    string
	CustomerID string
}
