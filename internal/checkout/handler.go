package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"freshcatch-be/internal/cart"
	"freshcatch-be/internal/commerce"
	"freshcatch-be/internal/coupon"
	"freshcatch-be/internal/delivery"
	"freshcatch-be/internal/money"
	"freshcatch-be/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/checkout/quote", h.Quote)
	r.Post("/checkout/coupon", h.ApplyCoupon)
}

type quoteRequest struct {
	CartID     string `json:"cart_id" validate:"required"`
	SlotID     string `json:"slot_id" validate:"required,oneof=sunrise morning evening"`
	CouponCode string `json:"coupon_code" validate:"omitempty,alphanum"`
}

type quoteResponse struct {
	Items  []cart.ItemResponse `json:"items"`
	Slot   cart.SlotResponse   `json:"slot"`
	Totals cart.TotalsResponse `json:"totals"`
}

type couponRequest struct {
	Code string `json:"code" validate:"required"`
}

type couponResponse struct {
	Code            string `json:"code"`
	Discount        int64  `json:"discount"`
	DiscountDisplay string `json:"discount_display"`
}

// Quote prices a cart under the checkout policy.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	quote, err := h.svc.Quote(r.Context(), req.CartID, req.SlotID, req.CouponCode)
	if err != nil {
		switch {
		case errors.Is(err, commerce.ErrNotFound):
			transport.WriteError(w, http.StatusNotFound, "cart_not_found", "")
		case errors.Is(err, delivery.ErrUnknownSlot):
			transport.WriteError(w, http.StatusBadRequest, "unknown_slot", err.Error())
		case errors.Is(err, coupon.ErrInvalidCoupon):
			transport.WriteError(w, http.StatusUnprocessableEntity, "invalid_coupon", err.Error())
		default:
			transport.WriteError(w, http.StatusBadGateway, "commerce_error", err.Error())
		}
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]any{"quote": toQuoteResponse(quote)})
}

// ApplyCoupon validates a coupon code for the checkout coupon box.
func (h *Handler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	discount, err := h.svc.ApplyCoupon(req.Code)
	if err != nil {
		transport.WriteError(w, http.StatusUnprocessableEntity, "invalid_coupon", err.Error())
		return
	}

	transport.WriteJSON(w, http.StatusOK, couponResponse{
		Code:            req.Code,
		Discount:        int64(discount),
		DiscountDisplay: money.Format(discount),
	})
}

func toQuoteResponse(q *Quote) quoteResponse {
	view := &cart.View{Cart: q.Cart, Slot: q.Slot, Totals: q.Totals}
	resp := cart.ToResponse(view)
	return quoteResponse{
		Items:  resp.Items,
		Slot:   resp.Slot,
		Totals: resp.Totals,
	}
}
