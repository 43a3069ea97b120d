package handlers

import (
	"net/http"
	"strings"

	"food-marketplace/internal/domain"
	"food-marketplace/internal/logx"
)

// RestaurantHandler serves restaurant listing and menu management endpoints.
type RestaurantHandler struct {
	uc     restaurantUsecase
	logger logx.Logger
}

// NewRestaurantHandler wires a restaurant usecase into HTTP handlers.
func NewRestaurantHandler(logger logx.Logger, uc restaurantUsecase) *RestaurantHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &RestaurantHandler{uc: uc, logger: logger}
}

// List handles GET /restaurants?cuisine=.
func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	f := domain.RestaurantFilter{Cuisine: strings.TrimSpace(r.URL.Query().Get("cuisine"))}
	list, err := h.uc.List(r.Context(), f)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, restaurantsToResponse(list))
}

// GetByID handles GET /restaurants/{id}.
func (h *RestaurantHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	rest, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, restaurantToResponse(*rest))
}

// AddMenuItem handles POST /restaurants/menu.
func (h *RestaurantHandler) AddMenuItem(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	var req createMenuItemRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	menu, err := h.uc.AddMenuItem(r.Context(), p.ID, req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, menuResponse{
		Message: "menu item added",
		Menu:    menuToResponse(menu),
	})
}

// UpdateMenuItem handles PUT /restaurants/menu/{itemID}.
func (h *RestaurantHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	itemID, err := idFromURL(r, "itemID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateMenuItemRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	menu, err := h.uc.UpdateMenuItem(r.Context(), req.toModel(p.ID, itemID))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	resp := menuItemResponse{Message: "menu item updated"}
	for _, it := range menu {
		if it.ID == itemID {
			resp.MenuItem = menuItemToResponse(it)
			break
		}
	}
	writeJSON(h.logger, w, r, http.StatusOK, resp)
}

// DeleteMenuItem handles DELETE /restaurants/menu/{itemID}.
func (h *RestaurantHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	itemID, err := idFromURL(r, "itemID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	menu, err := h.uc.DeleteMenuItem(r.Context(), p.ID, itemID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, menuResponse{
		Message: "menu item deleted",
		Menu:    menuToResponse(menu),
	})
}
