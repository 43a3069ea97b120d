package handlers

import (
	"context"
	"net/http"

	"food-marketplace/internal/domain"
	"food-marketplace/internal/logx"
)

// OrderHandler serves the order lifecycle endpoints for customers,
// restaurants and couriers.
type OrderHandler struct {
	uc     orderUsecase
	logger logx.Logger
}

// NewOrderHandler wires an order usecase into HTTP handlers.
func NewOrderHandler(logger logx.Logger, uc orderUsecase) *OrderHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &OrderHandler{uc: uc, logger: logger}
}

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	var req createOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	o, err := h.uc.Create(r.Context(), req.toModel(p.ID))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, orderResponse{Message: "order created", Order: orderToResponse(*o)})
}

// GetByID handles GET /orders/{id}.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	o, err := h.uc.Get(r.Context(), p, id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(*o))
}

// History handles GET /orders/{id}/history.
func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	entries, err := h.uc.History(r.Context(), p, id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if entries == nil {
		entries = []domain.OrderHistoryEntry{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, entries)
}

// ListMine handles GET /orders/my for customers.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.uc.ListForCustomer)
}

// ListForRestaurant handles GET /restaurants/orders/my.
func (h *OrderHandler) ListForRestaurant(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.uc.ListForRestaurant)
}

// ListForCourier handles GET /orders/delivery/my.
func (h *OrderHandler) ListForCourier(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.uc.ListForCourier)
}

// ListAvailable handles GET /orders/delivery/available.
func (h *OrderHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, func(ctx context.Context, _ int64) ([]domain.Order, error) {
		return h.uc.ListAvailable(ctx)
	})
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request, fetch func(context.Context, int64) ([]domain.Order, error)) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	list, err := fetch(r.Context(), p.ID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ordersToResponse(list))
}

// UpdateStatus handles PUT /restaurants/orders/{id}/status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "order status updated", h.uc.UpdateStatusByRestaurant)
}

// UpdateDeliveryStatus handles PUT /orders/{id}/delivery-status.
func (h *OrderHandler) UpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "delivery status updated", h.uc.UpdateDeliveryStatus)
}

type transitionFunc func(ctx context.Context, actorID, id int64, to domain.OrderStatus) (*domain.Order, error)

func (h *OrderHandler) transition(w http.ResponseWriter, r *http.Request, msg string, apply transitionFunc) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req statusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	o, err := apply(r.Context(), p.ID, id, req.Status)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderResponse{Message: msg, Order: orderToResponse(*o)})
}

// Assign handles PUT /orders/{id}/assign.
func (h *OrderHandler) Assign(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	o, err := h.uc.Assign(r.Context(), p.ID, id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderResponse{Message: "order assigned", Order: orderToResponse(*o)})
}
