package cart

import (
	"context"

	"freshcatch-be/internal/commerce"
	"freshcatch-be/internal/delivery"
	"freshcatch-be/internal/logger"
	"freshcatch-be/internal/pricing"

	"go.uber.org/zap"
)

// View is a cart priced under the cart-page policy: delivery waived
// above the free-delivery threshold, no tax line.
type View struct {
	Cart     *Cart
	Slot     delivery.Slot
	Totals   pricing.Totals
	Progress pricing.Progress
}

// Service defines the cart-page business logic.
type Service interface {
	GetCart(ctx context.Context, cartID, slotID, couponCode string) (*View, error)
}

type service struct {
	commerce commerce.Client
}

func NewService(c commerce.Client) Service {
	return &service{commerce: c}
}

func (s *service) GetCart(ctx context.Context, cartID, slotID, couponCode string) (*View, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("cart_id", cartID),
		zap.String("slot_id", slotID),
	)

	if slotID == "" {
		slotID = delivery.DefaultSlotID
	}
	slot, err := delivery.SlotByID(slotID)
	if err != nil {
		return nil, err
	}

	raw, err := s.commerce.GetCart(ctx, cartID)
	if err != nil {
		log.Error("failed to fetch cart", zap.Error(err))
		return nil, err
	}

	c := FromCommerce(raw)
	if c.Subtotal == nil {
		// The platform sometimes omits subtotal; the calculator falls
		// back to summing line items.
		log.Debug("cart subtotal missing, recomputing from line items")
	}

	totals, err := pricing.ComputeTotals(
		c.PricingLines(),
		c.Subtotal,
		slot,
		couponCode,
		pricing.PolicyWaiveAboveThreshold,
	)
	if err != nil {
		return nil, err
	}

	return &View{
		Cart:     c,
		Slot:     slot,
		Totals:   totals,
		Progress: pricing.FreeDeliveryProgress(totals.Subtotal),
	}, nil
}
