package order

import "strings"

// DisplayStatus is the single canonical delivery-lifecycle stage shown
// to the customer, derived from the order's possibly-disagreeing
// upstream fields.
type DisplayStatus string

const (
	StatusOrderPlaced    DisplayStatus = "order_placed"
	StatusOrderConfirmed DisplayStatus = "order_confirmed"
	StatusShipped        DisplayStatus = "shipped"
	StatusOutForDelivery DisplayStatus = "out_for_delivery"
	StatusDelivered      DisplayStatus = "delivered"
	StatusCancelled      DisplayStatus = "cancelled"
)

// lifecycle is the fixed timeline ordering. Cancelled has no position
// here; it is an absorbing terminal state reachable from any
// non-delivered state.
var lifecycle = []DisplayStatus{
	StatusOrderPlaced,
	StatusOrderConfirmed,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
}

var stepLabels = map[DisplayStatus]string{
	StatusOrderPlaced:    "Order placed",
	StatusOrderConfirmed: "Order confirmed",
	StatusShipped:        "Shipped",
	StatusOutForDelivery: "Out for delivery",
	StatusDelivered:      "Delivered",
}

// ResolveStatus derives one DisplayStatus from an order's payment,
// fulfillment, and order status fields plus its fulfillment records.
// It is total: unknown or missing values fall through to
// StatusOrderPlaced, a deliberate fail-open-to-earliest-state policy.
//
// Precedence, first match wins: an explicit cancellation outranks
// everything; then coarse "delivered" signals; then the most specific
// evidence available, the last fulfillment record's timestamps; then
// the fulfillment status enum; then payment capture.
func ResolveStatus(o *Order) DisplayStatus {
	if o == nil {
		return StatusOrderPlaced
	}

	orderStatus := strings.ToLower(o.Status)
	if orderStatus == "cancelled" || orderStatus == "canceled" {
		return StatusCancelled
	}

	fulfillmentStatus := strings.ToLower(o.FulfillmentStatus)
	if fulfillmentStatus == "delivered" || orderStatus == "completed" {
		return StatusDelivered
	}

	if len(o.Fulfillments) > 0 {
		last := o.Fulfillments[len(o.Fulfillments)-1]
		switch {
		case last.DeliveredAt != nil:
			return StatusDelivered
		case last.ShippedAt != nil:
			return StatusOutForDelivery
		default:
			return StatusShipped
		}
	}

	if fulfillmentStatus == "fulfilled" || fulfillmentStatus == "partially_fulfilled" {
		return StatusShipped
	}

	if strings.ToLower(o.PaymentStatus) == "captured" {
		return StatusOrderConfirmed
	}

	return StatusOrderPlaced
}

// IsCancellable reports whether the cancel action may be offered. Once
// an order has shipped, cancellation is off the table.
func IsCancellable(o *Order) bool {
	switch ResolveStatus(o) {
	case StatusOrderPlaced, StatusOrderConfirmed:
		return true
	default:
		return false
	}
}

// TimelineStep is one position on the 5-step delivery timeline.
type TimelineStep struct {
	Status    DisplayStatus `json:"status"`
	Label     string        `json:"label"`
	Completed bool          `json:"completed"`
	Current   bool          `json:"current"`
}

// Timeline renders the fixed 5-step sequence for a resolved status. A
// cancelled order has no timeline position; callers special-case it
// visually and get an empty slice here.
func Timeline(resolved DisplayStatus) []TimelineStep {
	if resolved == StatusCancelled {
		return nil
	}

	current := 0
	for i, s := range lifecycle {
		if s == resolved {
			current = i
			break
		}
	}

	steps := make([]TimelineStep, len(lifecycle))
	for i, s := range lifecycle {
		steps[i] = TimelineStep{
			Status:    s,
			Label:     stepLabels[s],
			Completed: i <= current,
			Current:   i == current,
		}
	}
	return steps
}
