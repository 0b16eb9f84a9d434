package checkout

import (
	"context"

	"freshcatch-be/internal/cart"
	"freshcatch-be/internal/commerce"
	"freshcatch-be/internal/coupon"
	"freshcatch-be/internal/delivery"
	"freshcatch-be/internal/logger"
	"freshcatch-be/internal/money"
	"freshcatch-be/internal/pricing"

	"go.uber.org/zap"
)

// Quote is a cart priced under the checkout-page policy: the slot
// surcharge always applies and the flat tax line is added. This is
// deliberately a different rule than the cart page's threshold waiver.
type Quote struct {
	Cart   *cart.Cart
	Slot   delivery.Slot
	Totals pricing.Totals
}

// Service defines the checkout business logic.
type Service interface {
	Quote(ctx context.Context, cartID, slotID, couponCode string) (*Quote, error)
	ApplyCoupon(code string) (money.Amount, error)
}

type service struct {
	commerce commerce.Client
}

func NewService(c commerce.Client) Service {
	return &service{commerce: c}
}

func (s *service) Quote(ctx context.Context, cartID, slotID, couponCode string) (*Quote, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("cart_id", cartID),
		zap.String("slot_id", slotID),
	)

	slot, err := delivery.SlotByID(slotID)
	if err != nil {
		return nil, err
	}

	raw, err := s.commerce.GetCart(ctx, cartID)
	if err != nil {
		log.Error("failed to fetch cart for checkout", zap.Error(err))
		return nil, err
	}

	c := cart.FromCommerce(raw)

	totals, err := pricing.ComputeTotals(
		c.PricingLines(),
		c.Subtotal,
		slot,
		couponCode,
		pricing.PolicyAlwaysChargeSlot,
	)
	if err != nil {
		return nil, err
	}

	log.Info("checkout quote computed",
		zap.Int64("subtotal", int64(totals.Subtotal)),
		zap.Int64("discount", int64(totals.Discount)),
		zap.Int64("delivery_charge", int64(totals.DeliveryCharge)),
		zap.Int64("tax", int64(totals.Tax)),
		zap.Int64("total", int64(totals.Total)),
	)

	return &Quote{Cart: c, Slot: slot, Totals: totals}, nil
}

// ApplyCoupon validates a coupon code on its own, for the checkout
// page's apply-coupon box. Invalid codes are a user-facing rejection.
func (s *service) ApplyCoupon(code string) (money.Amount, error) {
	return coupon.Discount(code)
}
