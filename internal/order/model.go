package order

import (
	"time"

	"freshcatch-be/internal/money"
)

// Order is the domain view of a platform order. The three status
// fields are written by different upstream subsystems (payment
// capture, fulfillment, order completion) and are not guaranteed
// mutually consistent; ResolveStatus reconciles them.
type Order struct {
	ID                string
	DisplayID         int
	CustomerID        string
	Status            string
	PaymentStatus     string
	FulfillmentStatus string
	CreatedAt         time.Time
	Items             []Item
	Fulfillments      []Fulfillment
	Subtotal          *money.Amount
	ShippingTotal     money.Amount
	TaxTotal          money.Amount
	DiscountTotal     money.Amount
	Total             money.Amount
}

// Fulfillment is one physical shipment of part or all of an order's
// items, carrying optional ship/deliver timestamps.
type Fulfillment struct {
	ShippedAt   *time.Time
	DeliveredAt *time.Time
}

type Item struct {
	Title     string
	Thumbnail string
	UnitPrice money.Amount
	Quantity  int
	Total     *money.Amount
}
