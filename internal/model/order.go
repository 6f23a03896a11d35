package model

import "time"

// OrderFact is a read-only snapshot of one order, fetched fresh per turn.
// It is never cached across turns, so replies cannot be built from stale data.
type OrderFact struct {
	OrderID           string
	CustomerID        string
	Status            string
	EstimatedDelivery time.Time
	PaymentStatus     string
	PaymentAmount     float64
}
