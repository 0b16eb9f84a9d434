package order

import (
	"errors"
	"net/http"

	"freshcatch-be/internal/commerce"
	"freshcatch-be/internal/middleware"
	"freshcatch-be/internal/transport"

	"github.com/go-chi/chi/v5"
)

// Handler serves the order-history pages: list, detail (with the
// delivery timeline), and the cancel action.
type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the order routes. All of them require a customer
// identity.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireCustomer)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{id}", h.GetOrder)
		r.Post("/orders/{id}/cancel", h.CancelOrder)
	})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	customerID, _ := middleware.CustomerIDFromContext(r.Context())

	orders, err := h.svc.ListOrders(r.Context(), customerID)
	if err != nil {
		transport.WriteError(w, http.StatusBadGateway, "commerce_error", err.Error())
		return
	}

	out := make([]*Response, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToResponse(o))
	}
	transport.WriteJSON(w, http.StatusOK, map[string]any{"orders": out})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	customerID, _ := middleware.CustomerIDFromContext(r.Context())
	orderID := chi.URLParam(r, "id")

	o, err := h.svc.GetOrder(r.Context(), customerID, orderID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]any{"order": ToResponse(o)})
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	customerID, _ := middleware.CustomerIDFromContext(r.Context())
	orderID := chi.URLParam(r, "id")

	o, err := h.svc.CancelOrder(r.Context(), customerID, orderID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]any{"order": ToResponse(o)})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, commerce.ErrNotFound):
		transport.WriteError(w, http.StatusNotFound, "order_not_found", "")
	case errors.Is(err, ErrForbidden):
		transport.WriteError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, ErrNotCancellable):
		transport.WriteError(w, http.StatusConflict, "not_cancellable", err.Error())
	default:
		transport.WriteError(w, http.StatusBadGateway, "commerce_error", err.Error())
	}
}
