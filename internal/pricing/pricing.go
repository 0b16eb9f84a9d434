package pricing

import (
	"errors"
	"fmt"

	"freshcatch-be/internal/coupon"
	"freshcatch-be/internal/delivery"
	"freshcatch-be/internal/money"
)

var (
	ErrNegativeQuantity = errors.New("line item quantity must not be negative")
	ErrNegativeAmount   = errors.New("monetary amounts must not be negative")
)

// FreeDeliveryThreshold is the subtotal at which delivery becomes free
// under PolicyWaiveAboveThreshold.
const FreeDeliveryThreshold money.Amount = 30000

const taxRatePercent = 5

// Policy selects which of the two delivery-charge rules applies. The
// cart page waives the slot surcharge above the free-delivery
// threshold; the checkout page always charges the slot surcharge and
// adds the flat tax line. Callers must state which page they are
// pricing for.
type Policy string

const (
	PolicyWaiveAboveThreshold Policy = "waive_above_threshold"
	PolicyAlwaysChargeSlot    Policy = "always_charge_slot"
)

// LineItem carries the fields the calculator needs from a cart or
// order line. Total is the backend-computed line total when present;
// when nil the line falls back to UnitPrice * Quantity.
type LineItem struct {
	UnitPrice money.Amount
	Quantity  int
	Total     *money.Amount
}

type Totals struct {
	Subtotal       money.Amount
	Discount       money.Amount
	DeliveryCharge money.Amount
	Tax            money.Amount
	Total          money.Amount
}

// Progress is the free-delivery progress indicator shown on the cart
// page.
type Progress struct {
	Percent         int
	AmountRemaining money.Amount
}

// ComputeTotals derives subtotal, discount, delivery charge, tax, and
// grand total for a set of line items under the given policy.
//
// backendSubtotal, when non-nil, is authoritative; the line-item sum
// is a resilience fallback for responses that omit it. An invalid
// coupon code is a recoverable rejection, not a panic. The discount is
// clamped to the subtotal so the total never drops below delivery
// charge plus tax.
func ComputeTotals(
	items []LineItem,
	backendSubtotal *money.Amount,
	slot delivery.Slot,
	couponCode string,
	policy Policy,
) (Totals, error) {

	if policy != PolicyWaiveAboveThreshold && policy != PolicyAlwaysChargeSlot {
		return Totals{}, fmt.Errorf("unknown pricing policy %q", policy)
	}

	subtotal, err := subtotalOf(items, backendSubtotal)
	if err != nil {
		return Totals{}, err
	}

	discount := money.Amount(0)
	if couponCode != "" {
		d, err := coupon.Discount(couponCode)
		if err != nil {
			return Totals{}, err
		}
		discount = money.Min(d, subtotal)
	}

	deliveryCharge := slot.Surcharge
	if policy == PolicyWaiveAboveThreshold && subtotal >= FreeDeliveryThreshold {
		deliveryCharge = 0
	}

	tax := money.Amount(0)
	if policy == PolicyAlwaysChargeSlot {
		tax = taxOn(subtotal)
	}

	return Totals{
		Subtotal:       subtotal,
		Discount:       discount,
		DeliveryCharge: deliveryCharge,
		Tax:            tax,
		Total:          subtotal - discount + deliveryCharge + tax,
	}, nil
}

// FreeDeliveryProgress reports how close a subtotal is to the
// free-delivery threshold, for the cart-page progress bar.
func FreeDeliveryProgress(subtotal money.Amount) Progress {
	percent := int(subtotal * 100 / FreeDeliveryThreshold)
	if percent > 100 {
		percent = 100
	}
	return Progress{
		Percent:         percent,
		AmountRemaining: money.Max(FreeDeliveryThreshold-subtotal, 0),
	}
}

func subtotalOf(items []LineItem, backendSubtotal *money.Amount) (money.Amount, error) {
	if backendSubtotal != nil {
		if *backendSubtotal < 0 {
			return 0, ErrNegativeAmount
		}
		return *backendSubtotal, nil
	}

	sum := money.Amount(0)
	for _, item := range items {
		if item.Quantity < 0 {
			return 0, ErrNegativeQuantity
		}
		if item.UnitPrice < 0 || (item.Total != nil && *item.Total < 0) {
			return 0, ErrNegativeAmount
		}
		if item.Total != nil {
			sum += *item.Total
			continue
		}
		sum += item.UnitPrice * money.Amount(item.Quantity)
	}
	return sum, nil
}

// taxOn is the checkout-flow flat tax: 5% of subtotal, rounded half
// up in integer arithmetic.
func taxOn(subtotal money.Amount) money.Amount {
	return (subtotal*taxRatePercent + 50) / 100
}
