//go:generate mockgen -source=contracts.go -destination=restaurant_mocks_test.go -package=restaurant

package restaurant

import (
	"context"

	"food-marketplace/internal/domain"
)

type restaurantRepository interface {
	List(ctx context.Context, f domain.RestaurantFilter) ([]domain.Restaurant, error)
	Get(ctx context.Context, id int64) (*domain.Restaurant, error)
	ListMenu(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error)
	AddMenuItem(ctx context.Context, it *domain.MenuItem) (int64, error)
	UpdateMenuItem(ctx context.Context, u domain.PartialMenuItemUpdate) (bool, error)
	DeleteMenuItem(ctx context.Context, restaurantID, itemID int64) (bool, error)
}
