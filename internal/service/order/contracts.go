//go:generate mockgen -source=contracts.go -destination=order_mocks_test.go -package=order

package order

import (
	"context"

	"food-marketplace/internal/domain"
)

type orderRepository interface {
	Create(ctx context.Context, o *domain.Order) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, q domain.OrderQuery) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, scope domain.TransitionScope, from []domain.OrderStatus, to domain.OrderStatus) (bool, error)
	Assign(ctx context.Context, id, courierID int64) (bool, error)
	History(ctx context.Context, orderID int64) ([]domain.OrderHistoryEntry, error)
}

type restaurantReader interface {
	Get(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// EventPublisher delivers order events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, e domain.OrderEvent) error
}
