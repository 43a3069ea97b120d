package handlers

import (
	"food-marketplace/internal/domain"
	"food-marketplace/internal/service/account"
	"food-marketplace/internal/service/helpdesk"
)

func (r registerRequest) toInput() account.RegisterInput {
	return account.RegisterInput{
		Name:          r.Name,
		Email:         r.Email,
		Password:      r.Password,
		Phone:         r.Phone,
		Address:       r.Address,
		Cuisine:       r.Cuisine,
		Image:         r.Image,
		VehicleType:   r.VehicleType,
		VehicleNumber: r.VehicleNumber,
	}
}

func (r createMenuItemRequest) toModel() domain.MenuItem {
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return domain.MenuItem{
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		Category:    r.Category,
		IsAvailable: available,
		Image:       r.Image,
	}
}

func (r updateMenuItemRequest) toModel(restaurantID, itemID int64) domain.PartialMenuItemUpdate {
	return domain.PartialMenuItemUpdate{
		ID:           itemID,
		RestaurantID: restaurantID,
		Name:         r.Name,
		Description:  r.Description,
		PriceCents:   r.PriceCents,
		Category:     r.Category,
		IsAvailable:  r.IsAvailable,
		Image:        r.Image,
	}
}

func (r createOrderRequest) toModel(customerID int64) domain.NewOrder {
	lines := make([]domain.OrderLine, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, domain.OrderLine{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}
	return domain.NewOrder{
		CustomerID:          customerID,
		RestaurantID:        r.RestaurantID,
		Lines:               lines,
		DeliveryAddress:     r.DeliveryAddress,
		SpecialInstructions: r.SpecialInstructions,
	}
}

func (r ticketRequest) toInput() helpdesk.TicketInput {
	return helpdesk.TicketInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Subject:  r.Subject,
		Message:  r.Message,
		Category: r.Category,
	}
}

func (r updateTicketRequest) toModel(id int64) domain.TicketUpdate {
	return domain.TicketUpdate{
		ID:            id,
		Status:        r.Status,
		Priority:      r.Priority,
		AdminResponse: r.AdminResponse,
	}
}

func menuItemToResponse(it domain.MenuItem) menuItemDTO {
	return menuItemDTO{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		PriceCents:  it.PriceCents,
		Category:    it.Category,
		IsAvailable: it.IsAvailable,
		Image:       it.Image,
	}
}

func menuToResponse(menu []domain.MenuItem) []menuItemDTO {
	out := make([]menuItemDTO, 0, len(menu))
	for _, it := range menu {
		out = append(out, menuItemToResponse(it))
	}
	return out
}

func restaurantToResponse(r domain.Restaurant) restaurantDTO {
	cuisine := r.Cuisine
	if cuisine == nil {
		cuisine = []string{}
	}
	return restaurantDTO{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		Cuisine:   cuisine,
		Rating:    r.Rating,
		Image:     r.Image,
		Menu:      menuToResponse(r.Menu),
		CreatedAt: r.CreatedAt,
	}
}

func restaurantsToResponse(list []domain.Restaurant) []restaurantDTO {
	out := make([]restaurantDTO, 0, len(list))
	for _, r := range list {
		out = append(out, restaurantToResponse(r))
	}
	return out
}

func orderToResponse(o domain.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDTO{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			PriceCents: it.PriceCents,
			Quantity:   it.Quantity,
		})
	}
	return orderDTO{
		ID:                  o.ID,
		Customer:            o.Customer,
		Restaurant:          o.Restaurant,
		Courier:             o.Courier,
		Items:               items,
		TotalCents:          o.TotalCents,
		DeliveryAddress:     o.DeliveryAddress,
		SpecialInstructions: o.SpecialInstructions,
		Status:              o.Status,
		PaymentStatus:       o.PaymentStatus,
		DeliveredAt:         o.DeliveredAt,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func ordersToResponse(list []domain.Order) []orderDTO {
	out := make([]orderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, orderToResponse(o))
	}
	return out
}

func ticketToResponse(t domain.Ticket) ticketDTO {
	dto := ticketDTO{
		ID:            t.ID,
		Name:          t.Name,
		Email:         t.Email,
		Phone:         t.Phone,
		Subject:       t.Subject,
		Message:       t.Message,
		Category:      t.Category,
		Status:        t.Status,
		Priority:      t.Priority,
		AdminResponse: t.AdminResponse,
		ResponseDate:  t.ResponseDate,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	if t.Owner != nil {
		dto.Owner = &ticketOwnerDTO{ID: t.Owner.ID, Role: t.Owner.Role}
	}
	return dto
}

func ticketsToResponse(list []domain.Ticket) []ticketDTO {
	out := make([]ticketDTO, 0, len(list))
	for _, t := range list {
		out = append(out, ticketToResponse(t))
	}
	return out
}
