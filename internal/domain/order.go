package domain

import (
	"errors"
	"fmt"
	"time"
)

// PaymentStatus tracks payment for an order. Payments are not processed yet,
// so orders stay pending.
type PaymentStatus string

// List of possible payment statuses
const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// MaxItemQuantity bounds a single order line.
const MaxItemQuantity = 100

// Order is a customer's order from one restaurant.
type Order struct {
	ID                  int64
	CustomerID          int64
	RestaurantID        int64
	CourierID           *int64
	Items               []OrderItem
	TotalCents          int64
	DeliveryAddress     string
	SpecialInstructions string
	Status              OrderStatus
	PaymentStatus       PaymentStatus
	DeliveredAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Party details joined for display.
	Customer   *Party
	Restaurant *Party
	Courier    *Party
}

// Party is a short description of an order participant.
type Party struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// OrderItem is a snapshot of a menu item at the time of ordering.
type OrderItem struct {
	MenuItemID int64
	Name       string
	PriceCents int64
	Quantity   int
}

// LineTotal returns price × quantity in cents.
func (i OrderItem) LineTotal() int64 {
	return i.PriceCents * int64(i.Quantity)
}

// OrderLine is a requested menu item and quantity.
type OrderLine struct {
	MenuItemID int64
	Quantity   int
}

// NewOrder carries the input for placing an order.
type NewOrder struct {
	CustomerID          int64
	RestaurantID        int64
	Lines               []OrderLine
	DeliveryAddress     string
	SpecialInstructions string
}

// Errors reported by PriceOrder.
var (
	ErrEmptyOrder       = errors.New("order has no items")
	ErrBadQuantity      = errors.New("quantity out of range")
	ErrUnknownMenuItem  = errors.New("menu item not found")
	ErrMenuItemDisabled = errors.New("menu item unavailable")
)

// PriceOrder resolves lines against the restaurant menu and returns the item
// snapshots and the order total in cents.
func PriceOrder(r *Restaurant, lines []OrderLine) ([]OrderItem, int64, error) {
	if len(lines) == 0 {
		return nil, 0, ErrEmptyOrder
	}
	items := make([]OrderItem, 0, len(lines))
	var total int64
	for _, l := range lines {
		if l.Quantity < 1 || l.Quantity > MaxItemQuantity {
			return nil, 0, fmt.Errorf("menu item %d: %w", l.MenuItemID, ErrBadQuantity)
		}
		mi, ok := r.FindMenuItem(l.MenuItemID)
		if !ok {
			return nil, 0, fmt.Errorf("menu item %d: %w", l.MenuItemID, ErrUnknownMenuItem)
		}
		if !mi.IsAvailable {
			return nil, 0, fmt.Errorf("menu item %d: %w", l.MenuItemID, ErrMenuItemDisabled)
		}
		it := OrderItem{
			MenuItemID: mi.ID,
			Name:       mi.Name,
			PriceCents: mi.PriceCents,
			Quantity:   l.Quantity,
		}
		total += it.LineTotal()
		items = append(items, it)
	}
	return items, total, nil
}

// OrderQuery selects a listing of orders. Exactly one field is expected to be set.
type OrderQuery struct {
	CustomerID   int64
	RestaurantID int64
	CourierID    int64
	Available    bool
}

// TransitionScope restricts a status change to the order's restaurant or courier.
// Zero fields are not checked.
type TransitionScope struct {
	RestaurantID int64
	CourierID    int64
}

// OrderEvent is published whenever an order is created or changes status.
type OrderEvent struct {
	OrderID      int64       `json:"order_id"`
	Status       OrderStatus `json:"status"`
	RestaurantID int64       `json:"restaurant_id"`
	CourierID    *int64      `json:"courier_id,omitempty"`
	OccurredAt   time.Time   `json:"occurred_at"`
}

// EventFor builds the event describing o's current status.
func EventFor(o *Order, at time.Time) OrderEvent {
	return OrderEvent{
		OrderID:      o.ID,
		Status:       o.Status,
		RestaurantID: o.RestaurantID,
		CourierID:    o.CourierID,
		OccurredAt:   at,
	}
}

// OrderHistoryEntry is one recorded status change of an order.
type OrderHistoryEntry struct {
	ID         int64       `json:"id" db:"id"`
	OrderID    int64       `json:"order_id" db:"order_id"`
	Status     OrderStatus `json:"status" db:"status"`
	CourierID  *int64      `json:"courier_id,omitempty" db:"courier_id"`
	OccurredAt time.Time   `json:"occurred_at" db:"occurred_at"`
}
