package cart

import (
	"freshcatch-be/internal/money"
	"freshcatch-be/internal/pricing"
)

// Cart is the domain view of a platform cart. Subtotal is nil when
// the platform omits it; pricing then recomputes from line items.
type Cart struct {
	ID       string
	Items    []Item
	Subtotal *money.Amount
}

type Item struct {
	ID        string
	Title     string
	Thumbnail string
	UnitPrice money.Amount
	Quantity  int
	Total     *money.Amount
}

// PricingLines projects the cart into the calculator's input shape.
func (c *Cart) PricingLines() []pricing.LineItem {
	lines := make([]pricing.LineItem, 0, len(c.Items))
	for _, it := range c.Items {
		lines = append(lines, pricing.LineItem{
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Total:     it.Total,
		})
	}
	return lines
}
