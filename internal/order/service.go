package order

import (
	"context"

	"freshcatch-be/internal/commerce"
	"freshcatch-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the order-history business logic.
type Service interface {
	ListOrders(ctx context.Context, customerID string) ([]*Order, error)
	GetOrder(ctx context.Context, customerID, orderID string) (*Order, error)
	CancelOrder(ctx context.Context, customerID, orderID string) (*Order, error)
}

type service struct {
	commerce commerce.Client
}

func NewService(c commerce.Client) Service {
	return &service{commerce: c}
}

func (s *service) ListOrders(ctx context.Context, customerID string) ([]*Order, error) {
	raw, err := s.commerce.ListOrders(ctx, customerID)
	if err != nil {
		return nil, err
	}

	orders := make([]*Order, 0, len(raw))
	for i := range raw {
		o := FromCommerce(&raw[i])
		// The platform scopes the listing by customer already; keep
		// the ownership check anyway so a misbehaving upstream never
		// leaks someone else's order.
		if o.CustomerID != "" && o.CustomerID != customerID {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (s *service) GetOrder(ctx context.Context, customerID, orderID string) (*Order, error) {
	raw, err := s.commerce.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	o := FromCommerce(raw)
	if o.CustomerID != "" && o.CustomerID != customerID {
		return nil, ErrForbidden
	}
	return o, nil
}

func (s *service) CancelOrder(ctx context.Context, customerID, orderID string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", orderID),
		zap.String("customer_id", customerID),
	)

	o, err := s.GetOrder(ctx, customerID, orderID)
	if err != nil {
		return nil, err
	}

	if !IsCancellable(o) {
		log.Warn("cancellation rejected",
			zap.String("display_status", string(ResolveStatus(o))),
		)
		return nil, ErrNotCancellable
	}

	cancelled, err := s.commerce.CancelOrder(ctx, orderID)
	if err != nil {
		log.Error("platform cancel failed", zap.Error(err))
		return nil, err
	}

	log.Info("order cancelled")
	return FromCommerce(cancelled), nil
}
