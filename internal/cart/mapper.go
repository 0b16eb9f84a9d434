package cart

import (
	"freshcatch-be/internal/commerce"
	"freshcatch-be/internal/delivery"
	"freshcatch-be/internal/money"
	"freshcatch-be/internal/pricing"
)

// FromCommerce translates the platform's wire cart into the domain
// cart.
func FromCommerce(c *commerce.Cart) *Cart {
	if c == nil {
		return nil
	}

	items := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		var total *money.Amount
		if it.Total != nil {
			a := money.Amount(*it.Total)
			total = &a
		}
		items = append(items, Item{
			ID:        it.ID,
			Title:     it.Title,
			Thumbnail: it.Thumbnail,
			UnitPrice: money.Amount(it.UnitPrice),
			Quantity:  it.Quantity,
			Total:     total,
		})
	}

	var subtotal *money.Amount
	if c.Subtotal != nil {
		a := money.Amount(*c.Subtotal)
		subtotal = &a
	}

	return &Cart{ID: c.ID, Items: items, Subtotal: subtotal}
}

// Response is the cart-page REST shape: line items, totals under the
// cart-page pricing policy, and the free-delivery progress bar.
type Response struct {
	ID       string           `json:"id"`
	Items    []ItemResponse   `json:"items"`
	Slot     SlotResponse     `json:"slot"`
	Totals   TotalsResponse   `json:"totals"`
	Progress ProgressResponse `json:"free_delivery"`
}

type ItemResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
}

type SlotResponse struct {
	ID               string `json:"id"`
	Label            string `json:"label"`
	Window           string `json:"window"`
	Surcharge        int64  `json:"surcharge"`
	SurchargeDisplay string `json:"surcharge_display"`
}

type TotalsResponse struct {
	Subtotal       int64  `json:"subtotal"`
	Discount       int64  `json:"discount"`
	DeliveryCharge int64  `json:"delivery_charge"`
	Tax            int64  `json:"tax"`
	Total          int64  `json:"total"`
	TotalDisplay   string `json:"total_display"`
}

type ProgressResponse struct {
	Percent                int    `json:"percent"`
	AmountRemaining        int64  `json:"amount_remaining"`
	AmountRemainingDisplay string `json:"amount_remaining_display"`
}

func ToResponse(v *View) *Response {
	if v == nil {
		return nil
	}

	items := make([]ItemResponse, 0, len(v.Cart.Items))
	for _, it := range v.Cart.Items {
		total := it.UnitPrice * money.Amount(it.Quantity)
		if it.Total != nil {
			total = *it.Total
		}
		items = append(items, ItemResponse{
			ID:           it.ID,
			Title:        it.Title,
			Thumbnail:    it.Thumbnail,
			UnitPrice:    int64(it.UnitPrice),
			Quantity:     it.Quantity,
			Total:        int64(total),
			TotalDisplay: money.Format(total),
		})
	}

	return &Response{
		ID:       v.Cart.ID,
		Items:    items,
		Slot:     toSlotResponse(v.Slot),
		Totals:   toTotalsResponse(v.Totals),
		Progress: toProgressResponse(v.Progress),
	}
}

func toSlotResponse(s delivery.Slot) SlotResponse {
	return SlotResponse{
		ID:               s.ID,
		Label:            s.Label,
		Window:           s.Window,
		Surcharge:        int64(s.Surcharge),
		SurchargeDisplay: money.Format(s.Surcharge),
	}
}

func toTotalsResponse(t pricing.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:       int64(t.Subtotal),
		Discount:       int64(t.Discount),
		DeliveryCharge: int64(t.DeliveryCharge),
		Tax:            int64(t.Tax),
		Total:          int64(t.Total),
		TotalDisplay:   money.Format(t.Total),
	}
}

func toProgressResponse(p pricing.Progress) ProgressResponse {
	return ProgressResponse{
		Percent:                p.Percent,
		AmountRemaining:        int64(p.AmountRemaining),
		AmountRemainingDisplay: money.Format(p.AmountRemaining),
	}
}
