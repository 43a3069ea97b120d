//go:generate mockgen -source=contracts.go -destination=orderevents_mocks_test.go -package=orderevents_test

package orderevents

import (
	"context"

	"food-marketplace/internal/domain"
)

// EventLog records order status changes for tracking.
type EventLog interface {
	AppendEvent(ctx context.Context, e domain.OrderEvent) error
}

// CourierAvailability toggles whether a courier can take new orders.
type CourierAvailability interface {
	SetAvailability(ctx context.Context, id int64, available bool) (bool, error)
}
