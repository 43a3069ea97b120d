package handlers

import (
	"net/http"

	"food-marketplace/internal/auth"
	"food-marketplace/internal/domain"
	"food-marketplace/internal/logx"
)

// HelpdeskHandler serves support ticket endpoints.
type HelpdeskHandler struct {
	uc     helpdeskUsecase
	logger logx.Logger
}

// NewHelpdeskHandler wires a helpdesk usecase into HTTP handlers.
func NewHelpdeskHandler(logger logx.Logger, uc helpdeskUsecase) *HelpdeskHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &HelpdeskHandler{uc: uc, logger: logger}
}

// Create handles POST /helpdesk. Anonymous callers are allowed.
func (h *HelpdeskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ticketRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	var owner *domain.Principal
	if p, ok := auth.PrincipalFrom(r.Context()); ok {
		owner = &p
	}

	t, err := h.uc.Create(r.Context(), owner, req.toInput())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, ticketResponse{Message: "ticket created", Ticket: ticketToResponse(*t)})
}

// ListMine handles GET /helpdesk/my.
func (h *HelpdeskHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	list, err := h.uc.ListMine(r.Context(), p)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ticketsToResponse(list))
}

// ListAll handles GET /helpdesk/all?status=&category=&priority=.
func (h *HelpdeskHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.TicketFilter{
		Status:   domain.TicketStatus(q.Get("status")),
		Category: domain.TicketCategory(q.Get("category")),
		Priority: domain.TicketPriority(q.Get("priority")),
	}
	list, err := h.uc.ListAll(r.Context(), f)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ticketsToResponse(list))
}

// GetByID handles GET /helpdesk/{id}.
func (h *HelpdeskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	t, err := h.uc.Get(r.Context(), p, id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ticketToResponse(*t))
}

// Update handles PUT /helpdesk/{id}.
func (h *HelpdeskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateTicketRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	t, err := h.uc.Update(r.Context(), req.toModel(id))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ticketResponse{Message: "ticket updated", Ticket: ticketToResponse(*t)})
}
