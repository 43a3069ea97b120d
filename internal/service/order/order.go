package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"food-marketplace/internal/apperr"
	"food-marketplace/internal/domain"
	"food-marketplace/internal/logx"
)

// Service drives the order lifecycle from checkout to delivery.
type Service struct {
	orders           orderRepository
	restaurants      restaurantReader
	events           EventPublisher
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates an order Service.
func NewService(o orderRepository, r restaurantReader, events EventPublisher, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		orders:           o,
		restaurants:      r,
		events:           events,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Create prices the requested lines against the restaurant's current menu and stores a pending order.
func (s *Service) Create(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
	in.DeliveryAddress = strings.TrimSpace(in.DeliveryAddress)
	if in.RestaurantID <= 0 {
		return nil, fmt.Errorf("restaurant_id is required: %w", apperr.ErrInvalid)
	}
	if in.DeliveryAddress == "" {
		return nil, fmt.Errorf("delivery_address is required: %w", apperr.ErrInvalid)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rest, err := s.restaurants.Get(ctx, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if rest == nil || !rest.IsActive {
		return nil, fmt.Errorf("restaurant %d: %w", in.RestaurantID, apperr.ErrNotFound)
	}

	items, total, err := domain.PriceOrder(rest, in.Lines)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, apperr.ErrInvalid)
	}

	o := &domain.Order{
		CustomerID:          in.CustomerID,
		RestaurantID:        in.RestaurantID,
		Items:               items,
		TotalCents:          total,
		DeliveryAddress:     in.DeliveryAddress,
		SpecialInstructions: strings.TrimSpace(in.SpecialInstructions),
		Status:              domain.OrderPending,
		PaymentStatus:       domain.PaymentPending,
	}
	id, err := s.orders.Create(ctx, o)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		logx.String("event", "order_created"),
		logx.Int64("order_id", id),
		logx.Int64("customer_id", in.CustomerID),
		logx.Int64("restaurant_id", in.RestaurantID),
		logx.Int64("total_cents", total),
	)
	return s.reloadAndPublish(ctx, id)
}

// Get returns an order visible to p.
func (s *Service) Get(ctx context.Context, p domain.Principal, id int64) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.getVisible(ctx, p, id)
}

func (s *Service) getVisible(ctx context.Context, p domain.Principal, id int64) (*domain.Order, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("order %d: %w", id, apperr.ErrNotFound)
	}
	if !canView(p, o) {
		return nil, fmt.Errorf("order %d: %w", id, apperr.ErrForbidden)
	}
	return o, nil
}

// canView reports whether p is a party of o. Couriers may also see unassigned orders.
func canView(p domain.Principal, o *domain.Order) bool {
	switch p.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleCustomer:
		return o.CustomerID == p.ID
	case domain.RoleRestaurant:
		return o.RestaurantID == p.ID
	case domain.RoleDelivery:
		return o.CourierID == nil || *o.CourierID == p.ID
	}
	return false
}

// ListForCustomer returns the customer's orders, newest first.
func (s *Service) ListForCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	return s.list(ctx, domain.OrderQuery{CustomerID: customerID})
}

// ListForRestaurant returns orders placed with the restaurant, newest first.
func (s *Service) ListForRestaurant(ctx context.Context, restaurantID int64) ([]domain.Order, error) {
	return s.list(ctx, domain.OrderQuery{RestaurantID: restaurantID})
}

// ListForCourier returns orders assigned to the courier, newest first.
func (s *Service) ListForCourier(ctx context.Context, courierID int64) ([]domain.Order, error) {
	return s.list(ctx, domain.OrderQuery{CourierID: courierID})
}

// ListAvailable returns ready orders without a courier, oldest first.
func (s *Service) ListAvailable(ctx context.Context) ([]domain.Order, error) {
	return s.list(ctx, domain.OrderQuery{Available: true})
}

func (s *Service) list(ctx context.Context, q domain.OrderQuery) ([]domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.orders.List(ctx, q)
}

// UpdateStatusByRestaurant advances or cancels one of the restaurant's orders.
func (s *Service) UpdateStatusByRestaurant(ctx context.Context, restaurantID, id int64, to domain.OrderStatus) (*domain.Order, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("status %q: %w", to, apperr.ErrInvalid)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil || o.RestaurantID != restaurantID {
		return nil, fmt.Errorf("order %d: %w", id, apperr.ErrNotFound)
	}
	if !domain.CanRestaurantMove(o.Status, to) {
		return nil, transitionError(o.Status, to)
	}

	scope := domain.TransitionScope{RestaurantID: restaurantID}
	if err := s.move(ctx, id, scope, domain.RestaurantSources(to), o.Status, to); err != nil {
		return nil, err
	}
	return s.reloadAndPublish(ctx, id)
}

// Assign hands a ready, unassigned order to the courier and marks it picked.
func (s *Service) Assign(ctx context.Context, courierID, id int64) (*domain.Order, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.orders.Assign(ctx, id, courierID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("order not found or already assigned: %w", apperr.ErrNotFound)
	}

	s.logger.Info("order assigned",
		logx.String("event", "order_assigned"),
		logx.Int64("order_id", id),
		logx.Int64("courier_id", courierID),
	)
	return s.reloadAndPublish(ctx, id)
}

// UpdateDeliveryStatus lets the assigned courier complete the delivery.
func (s *Service) UpdateDeliveryStatus(ctx context.Context, courierID, id int64, to domain.OrderStatus) (*domain.Order, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("status %q: %w", to, apperr.ErrInvalid)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil || o.CourierID == nil || *o.CourierID != courierID {
		return nil, fmt.Errorf("order %d: %w", id, apperr.ErrNotFound)
	}
	if !domain.CanCourierMove(o.Status, to) {
		return nil, transitionError(o.Status, to)
	}

	scope := domain.TransitionScope{CourierID: courierID}
	if err := s.move(ctx, id, scope, domain.CourierSources(to), o.Status, to); err != nil {
		return nil, err
	}
	return s.reloadAndPublish(ctx, id)
}

// History returns the recorded status changes of an order visible to p.
func (s *Service) History(ctx context.Context, p domain.Principal, id int64) ([]domain.OrderHistoryEntry, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.getVisible(ctx, p, id); err != nil {
		return nil, err
	}
	return s.orders.History(ctx, id)
}

func (s *Service) move(ctx context.Context, id int64, scope domain.TransitionScope, sources []domain.OrderStatus, from, to domain.OrderStatus) error {
	ok, err := s.orders.UpdateStatus(ctx, id, scope, sources, to)
	if err != nil {
		return err
	}
	if !ok {
		// status changed between the read and the conditional update
		return fmt.Errorf("order %d changed concurrently: %w", id, apperr.ErrConflict)
	}
	s.logger.Info("order status changed",
		logx.String("event", "order_status_changed"),
		logx.Int64("order_id", id),
		logx.String("from", string(from)),
		logx.String("to", string(to)),
	)
	return nil
}

func transitionError(from, to domain.OrderStatus) error {
	return fmt.Errorf("cannot move order from %s to %s: %w", from, to, apperr.ErrConflict)
}

func (s *Service) reloadAndPublish(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("order %d: %w", id, apperr.ErrNotFound)
	}
	s.publish(ctx, o)
	return o, nil
}

// publish is best-effort: the order is already stored.
func (s *Service) publish(ctx context.Context, o *domain.Order) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, domain.EventFor(o, s.now())); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("publish order event failed",
			logx.Int64("order_id", o.ID),
			logx.String("status", string(o.Status)),
			logx.Err(err),
		)
	}
}
