package handlers

import (
	"context"

	"food-marketplace/internal/domain"
	"food-marketplace/internal/service/account"
	"food-marketplace/internal/service/helpdesk"
)

type accountUsecase interface {
	Register(ctx context.Context, role domain.Role, in account.RegisterInput) (account.AuthResult, error)
	Login(ctx context.Context, role domain.Role, email, password string) (account.AuthResult, error)
	Profile(ctx context.Context, p domain.Principal) (domain.Profile, error)
}

type restaurantUsecase interface {
	List(ctx context.Context, f domain.RestaurantFilter) ([]domain.Restaurant, error)
	Get(ctx context.Context, id int64) (*domain.Restaurant, error)
	AddMenuItem(ctx context.Context, restaurantID int64, it domain.MenuItem) ([]domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, u domain.PartialMenuItemUpdate) ([]domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, restaurantID, itemID int64) ([]domain.MenuItem, error)
}

type orderUsecase interface {
	Create(ctx context.Context, in domain.NewOrder) (*domain.Order, error)
	Get(ctx context.Context, p domain.Principal, id int64) (*domain.Order, error)
	History(ctx context.Context, p domain.Principal, id int64) ([]domain.OrderHistoryEntry, error)
	ListForCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
	ListForRestaurant(ctx context.Context, restaurantID int64) ([]domain.Order, error)
	ListForCourier(ctx context.Context, courierID int64) ([]domain.Order, error)
	ListAvailable(ctx context.Context) ([]domain.Order, error)
	UpdateStatusByRestaurant(ctx context.Context, restaurantID, id int64, to domain.OrderStatus) (*domain.Order, error)
	Assign(ctx context.Context, courierID, id int64) (*domain.Order, error)
	UpdateDeliveryStatus(ctx context.Context, courierID, id int64, to domain.OrderStatus) (*domain.Order, error)
}

type helpdeskUsecase interface {
	Create(ctx context.Context, owner *domain.Principal, in helpdesk.TicketInput) (*domain.Ticket, error)
	ListMine(ctx context.Context, p domain.Principal) ([]domain.Ticket, error)
	ListAll(ctx context.Context, f domain.TicketFilter) ([]domain.Ticket, error)
	Get(ctx context.Context, p domain.Principal, id int64) (*domain.Ticket, error)
	Update(ctx context.Context, u domain.TicketUpdate) (*domain.Ticket, error)
}
