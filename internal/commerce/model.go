package commerce

import "time"

// Wire shapes returned by the hosted commerce platform's store API.
// Only the fields the storefront consumes are declared; everything
// else in the payload is ignored.

type Order struct {
	ID                string        `json:"id"`
	DisplayID         int           `json:"display_id"`
	CustomerID        string        `json:"customer_id"`
	Status            string        `json:"status"`
	PaymentStatus     string        `json:"payment_status"`
	FulfillmentStatus string        `json:"fulfillment_status"`
	CreatedAt         time.Time     `json:"created_at"`
	Items             []LineItem    `json:"items"`
	Fulfillments      []Fulfillment `json:"fulfillments"`
	Subtotal          *int64        `json:"subtotal"`
	ShippingTotal     int64         `json:"shipping_total"`
	TaxTotal          int64         `json:"tax_total"`
	DiscountTotal     int64         `json:"discount_total"`
	Total             int64         `json:"total"`
}

type Fulfillment struct {
	ShippedAt   *time.Time `json:"shipped_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
}

type LineItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Total     *int64 `json:"total"`
}

// Cart subtotal is a pointer on purpose: the platform sometimes omits
// it, and callers fall back to summing line items.
type Cart struct {
	ID       string     `json:"id"`
	Items    []LineItem `json:"items"`
	Subtotal *int64     `json:"subtotal"`
}

type cartEnvelope struct {
	Cart Cart `json:"cart"`
}

type orderEnvelope struct {
	Order Order `json:"order"`
}

type ordersEnvelope struct {
	Orders []Order `json:"orders"`
	Count  int     `json:"count"`
}
