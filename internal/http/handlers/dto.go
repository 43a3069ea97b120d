package handlers

import (
	"time"

	"food-marketplace/internal/domain"
)

type registerRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	Cuisine       []string `json:"cuisine"`
	Image         string   `json:"image"`
	VehicleType   string   `json:"vehicle_type"`
	VehicleNumber string   `json:"vehicle_number"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    domain.Profile `json:"user"`
}

type profileResponse struct {
	User domain.Profile `json:"user"`
}

type menuItemDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Category    string `json:"category"`
	IsAvailable bool   `json:"is_available"`
	Image       string `json:"image,omitempty"`
}

type restaurantDTO struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Address   string        `json:"address"`
	Cuisine   []string      `json:"cuisine"`
	Rating    float64       `json:"rating"`
	Image     string        `json:"image,omitempty"`
	Menu      []menuItemDTO `json:"menu"`
	CreatedAt time.Time     `json:"created_at"`
}

type createMenuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Category    string `json:"category"`
	IsAvailable *bool  `json:"is_available,omitempty"`
	Image       string `json:"image"`
}

type updateMenuItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsAvailable *bool   `json:"is_available,omitempty"`
	Image       *string `json:"image,omitempty"`
}

type menuResponse struct {
	Message string        `json:"message"`
	Menu    []menuItemDTO `json:"menu"`
}

type menuItemResponse struct {
	Message  string      `json:"message"`
	MenuItem menuItemDTO `json:"menu_item"`
}

type orderLineRequest struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

type createOrderRequest struct {
	RestaurantID        int64              `json:"restaurant_id"`
	Items               []orderLineRequest `json:"items"`
	DeliveryAddress     string             `json:"delivery_address"`
	SpecialInstructions string             `json:"special_instructions"`
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

type orderItemDTO struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

type orderDTO struct {
	ID                  int64                `json:"id"`
	Customer            *domain.Party        `json:"customer,omitempty"`
	Restaurant          *domain.Party        `json:"restaurant,omitempty"`
	Courier             *domain.Party        `json:"courier,omitempty"`
	Items               []orderItemDTO       `json:"items"`
	TotalCents          int64                `json:"total_cents"`
	DeliveryAddress     string               `json:"delivery_address"`
	SpecialInstructions string               `json:"special_instructions,omitempty"`
	Status              domain.OrderStatus   `json:"status"`
	PaymentStatus       domain.PaymentStatus `json:"payment_status"`
	DeliveredAt         *time.Time           `json:"delivered_at,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

type orderResponse struct {
	Message string   `json:"message"`
	Order   orderDTO `json:"order"`
}

type ticketRequest struct {
	Name     string                `json:"name"`
	Email    string                `json:"email"`
	Phone    string                `json:"phone"`
	Subject  string                `json:"subject"`
	Message  string                `json:"message"`
	Category domain.TicketCategory `json:"category"`
}

type updateTicketRequest struct {
	Status        *domain.TicketStatus   `json:"status,omitempty"`
	Priority      *domain.TicketPriority `json:"priority,omitempty"`
	AdminResponse *string                `json:"admin_response,omitempty"`
}

type ticketOwnerDTO struct {
	ID   int64       `json:"id"`
	Role domain.Role `json:"role"`
}

type ticketDTO struct {
	ID            int64                 `json:"id"`
	Owner         *ticketOwnerDTO       `json:"owner,omitempty"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Phone         string                `json:"phone,omitempty"`
	Subject       string                `json:"subject"`
	Message       string                `json:"message"`
	Category      domain.TicketCategory `json:"category"`
	Status        domain.TicketStatus   `json:"status"`
	Priority      domain.TicketPriority `json:"priority"`
	AdminResponse string                `json:"admin_response,omitempty"`
	ResponseDate  *time.Time            `json:"response_date,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

type ticketResponse struct {
	Message string    `json:"message"`
	Ticket  ticketDTO `json:"ticket"`
}
