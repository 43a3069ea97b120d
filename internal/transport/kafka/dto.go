package kafka

import (
	"strings"
	"time"

	"food-marketplace/internal/domain"
)

// EventDTO is the wire form of domain.OrderEvent
type EventDTO struct {
	OrderID      int64     `json:"order_id"`
	Status       string    `json:"status"`
	RestaurantID int64     `json:"restaurant_id"`
	CourierID    *int64    `json:"courier_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// FromDomain converts domain.OrderEvent to EventDTO
func FromDomain(e domain.OrderEvent) EventDTO {
	return EventDTO{
		OrderID:      e.OrderID,
		Status:       string(e.Status),
		RestaurantID: e.RestaurantID,
		CourierID:    e.CourierID,
		OccurredAt:   e.OccurredAt,
	}
}

// ToDomain converts EventDTO to domain.OrderEvent
func ToDomain(dto EventDTO) domain.OrderEvent {
	return domain.OrderEvent{
		OrderID:      dto.OrderID,
		Status:       domain.OrderStatus(strings.ToLower(strings.TrimSpace(dto.Status))),
		RestaurantID: dto.RestaurantID,
		CourierID:    dto.CourierID,
		OccurredAt:   dto.OccurredAt,
	}
}
