package cart

import (
	"errors"
	"net/http"

	"freshcatch-be/internal/commerce"
	"freshcatch-be/internal/coupon"
	"freshcatch-be/internal/delivery"
	"freshcatch-be/internal/transport"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/cart/{id}", h.GetCart)
	r.Get("/delivery-slots", h.ListSlots)
}

// GetCart returns the cart with totals under the cart-page policy.
// Slot and coupon are optional query parameters.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "id")
	slotID := r.URL.Query().Get("slot")
	couponCode := r.URL.Query().Get("coupon")

	view, err := h.svc.GetCart(r.Context(), cartID, slotID, couponCode)
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

	transport.WriteJSON(w, http.StatusOK, map[string]any{"cart": ToResponse(view)})
}

// ListSlots exposes the static delivery-slot table to the storefront.
func (h *Handler) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots := delivery.Slots()
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, toSlotResponse(s))
	}
	transport.WriteJSON(w, http.StatusOK, map[string]any{"slots": out})
}
