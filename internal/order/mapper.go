package order

import (
	"time"

	"freshcatch-be/internal/commerce"
	"freshcatch-be/internal/money"
)

// FromCommerce translates the platform's wire order into the domain
// order. Monetary fields move into minor-unit Amounts; the optional
// subtotal stays a pointer so downstream pricing can fall back when
// the platform omits it.
func FromCommerce(o *commerce.Order) *Order {
	if o == nil {
		return nil
	}

	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, Item{
			Title:     it.Title,
			Thumbnail: it.Thumbnail,
			UnitPrice: money.Amount(it.UnitPrice),
			Quantity:  it.Quantity,
			Total:     amountPtr(it.Total),
		})
	}

	fulfillments := make([]Fulfillment, 0, len(o.Fulfillments))
	for _, f := range o.Fulfillments {
		fulfillments = append(fulfillments, Fulfillment{
			ShippedAt:   f.ShippedAt,
			DeliveredAt: f.DeliveredAt,
		})
	}

	return &Order{
		ID:                o.ID,
		DisplayID:         o.DisplayID,
		CustomerID:        o.CustomerID,
		Status:            o.Status,
		PaymentStatus:     o.PaymentStatus,
		FulfillmentStatus: o.FulfillmentStatus,
		CreatedAt:         o.CreatedAt,
		Items:             items,
		Fulfillments:      fulfillments,
		Subtotal:          amountPtr(o.Subtotal),
		ShippingTotal:     money.Amount(o.ShippingTotal),
		TaxTotal:          money.Amount(o.TaxTotal),
		DiscountTotal:     money.Amount(o.DiscountTotal),
		Total:             money.Amount(o.Total),
	}
}

func amountPtr(v *int64) *money.Amount {
	if v == nil {
		return nil
	}
	a := money.Amount(*v)
	return &a
}

// Response is the REST shape consumed by the order-list and
// order-detail pages. Amounts carry both the raw minor-unit value and
// a formatted display string; formatting happens here, once, at the
// presentation boundary.
type Response struct {
	ID            string         `json:"id"`
	DisplayID     int            `json:"display_id"`
	CreatedAt     time.Time      `json:"created_at"`
	DisplayStatus DisplayStatus  `json:"display_status"`
	Cancellable   bool           `json:"cancellable"`
	Timeline      []TimelineStep `json:"timeline,omitempty"`
	Items         []ItemResponse `json:"items"`
	Subtotal      int64          `json:"subtotal"`
	ShippingTotal int64          `json:"shipping_total"`
	TaxTotal      int64          `json:"tax_total"`
	DiscountTotal int64          `json:"discount_total"`
	Total         int64          `json:"total"`
	TotalDisplay  string         `json:"total_display"`
}

type ItemResponse struct {
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
}

// ToResponse decorates a domain order with its resolved display
// status, timeline, and cancellability.
func ToResponse(o *Order) *Response {
	if o == nil {
		return nil
	}

	resolved := ResolveStatus(o)

	items := make([]ItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		total := it.UnitPrice * money.Amount(it.Quantity)
		if it.Total != nil {
			total = *it.Total
		}
		items = append(items, ItemResponse{
			Title:        it.Title,
			Thumbnail:    it.Thumbnail,
			UnitPrice:    int64(it.UnitPrice),
			Quantity:     it.Quantity,
			Total:        int64(total),
			TotalDisplay: money.Format(total),
		})
	}

	subtotal := money.Amount(0)
	if o.Subtotal != nil {
		subtotal = *o.Subtotal
	}

	return &Response{
		ID:            o.ID,
		DisplayID:     o.DisplayID,
		CreatedAt:     o.CreatedAt,
		DisplayStatus: resolved,
		Cancellable:   IsCancellable(o),
		Timeline:      Timeline(resolved),
		Items:         items,
		Subtotal:      int64(subtotal),
		ShippingTotal: int64(o.ShippingTotal),
		TaxTotal:      int64(o.TaxTotal),
		DiscountTotal: int64(o.DiscountTotal),
		Total:         int64(o.Total),
		TotalDisplay:  money.Format(o.Total),
	}
}
