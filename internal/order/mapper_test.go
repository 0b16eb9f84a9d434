package order

import (
	"testing"
	"time"

	"freshcatch-be/internal/commerce"
	"freshcatch-be/internal/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCommerce(t *testing.T) {
	subtotal := int64(25000)
	lineTotal := int64(25000)
	shipped := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	wire := &commerce.Order{
		ID:                "order_1",
		DisplayID:         42,
		CustomerID:        "cus_1",
		Status:            "pending",
		PaymentStatus:     "captured",
		FulfillmentStatus: "fulfilled",
		Items: []commerce.LineItem{
			{Title: "Pomfret Whole", UnitPrice: 12500, Quantity: 2, Total: &lineTotal},
		},
		Fulfillments:  []commerce.Fulfillment{{ShippedAt: &shipped}},
		Subtotal:      &subtotal,
		ShippingTotal: 3000,
		TaxTotal:      1250,
		DiscountTotal: 0,
		Total:         29250,
	}

	o := FromCommerce(wire)
	require.NotNil(t, o)
	assert.Equal(t, 42, o.DisplayID)
	require.NotNil(t, o.Subtotal)
	assert.Equal(t, money.Amount(25000), *o.Subtotal)
	require.Len(t, o.Items, 1)
	require.NotNil(t, o.Items[0].Total)
	assert.Equal(t, money.Amount(25000), *o.Items[0].Total)
	require.Len(t, o.Fulfillments, 1)
	assert.Equal(t, &shipped, o.Fulfillments[0].ShippedAt)

	assert.Nil(t, FromCommerce(nil))
}

func TestFromCommerceMissingSubtotal(t *testing.T) {
	o := FromCommerce(&commerce.Order{ID: "order_1"})
	require.NotNil(t, o)
	assert.Nil(t, o.Subtotal)
}

func TestToResponse(t *testing.T) {
	o := &Order{
		ID:            "order_1",
		DisplayID:     42,
		CustomerID:    "cus_1",
		PaymentStatus: "captured",
		Items: []Item{
			{Title: "Pomfret Whole", UnitPrice: 12500, Quantity: 2},
		},
		Total: 25000,
	}

	resp := ToResponse(o)
	require.NotNil(t, resp)
	assert.Equal(t, StatusOrderConfirmed, resp.DisplayStatus)
	assert.True(t, resp.Cancellable)
	require.Len(t, resp.Timeline, 5)
	assert.True(t, resp.Timeline[1].Current)
	require.Len(t, resp.Items, 1)
	// Line total falls back to unit price * quantity when absent.
	assert.Equal(t, int64(25000), resp.Items[0].Total)
	assert.Equal(t, "₹250.00", resp.Items[0].TotalDisplay)
	assert.Equal(t, "₹250.00", resp.TotalDisplay)

	assert.Nil(t, ToResponse(nil))
}

func TestToResponseCancelled(t *testing.T) {
	resp := ToResponse(&Order{ID: "order_1", Status: "cancelled"})
	require.NotNil(t, resp)
	assert.Equal(t, StatusCancelled, resp.DisplayStatus)
	assert.False(t, resp.Cancellable)
	assert.Empty(t, resp.Timeline)
}
