package order

import "errors"

var (
	// ErrForbidden is returned when a customer asks for an order that
	// belongs to someone else.
	ErrForbidden = errors.New("cannot access another customer's order")

	// ErrNotCancellable is returned when cancellation is requested
	// after the order has shipped.
	ErrNotCancellable = errors.New("order can no longer be cancelled")
)
