package restaurant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"food-marketplace/internal/apperr"
	"food-marketplace/internal/domain"
)

// Service serves the restaurant catalogue and menu management.
type Service struct {
	repo             restaurantRepository
	operationTimeout time.Duration
}

// NewService creates a restaurant Service.
func NewService(r restaurantRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// List returns active restaurants with their menus.
func (s *Service) List(ctx context.Context, f domain.RestaurantFilter) ([]domain.Restaurant, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, f)
}

// Get returns a restaurant with its menu.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Restaurant, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("restaurant %d: %w", id, apperr.ErrNotFound)
	}
	return r, nil
}

func validateItem(it *domain.MenuItem) error {
	it.Name = strings.TrimSpace(it.Name)
	if it.Name == "" {
		return fmt.Errorf("name is required: %w", apperr.ErrInvalid)
	}
	if it.PriceCents <= 0 {
		return fmt.Errorf("price must be positive: %w", apperr.ErrInvalid)
	}
	return nil
}

func validateUpdate(u *domain.PartialMenuItemUpdate) error {
	if u.ID <= 0 || u.Empty() {
		return apperr.ErrInvalid
	}
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return fmt.Errorf("name is required: %w", apperr.ErrInvalid)
		}
		u.Name = &name
	}
	if u.PriceCents != nil && *u.PriceCents <= 0 {
		return fmt.Errorf("price must be positive: %w", apperr.ErrInvalid)
	}
	return nil
}

// AddMenuItem appends an item to the restaurant's menu and returns the updated menu.
func (s *Service) AddMenuItem(ctx context.Context, restaurantID int64, it domain.MenuItem) ([]domain.MenuItem, error) {
	if err := validateItem(&it); err != nil {
		return nil, err
	}
	it.RestaurantID = restaurantID

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if _, err := s.repo.AddMenuItem(ctx, &it); err != nil {
		return nil, err
	}
	return s.repo.ListMenu(ctx, restaurantID)
}

// UpdateMenuItem applies a partial update to one of the restaurant's items and returns the updated menu.
func (s *Service) UpdateMenuItem(ctx context.Context, u domain.PartialMenuItemUpdate) ([]domain.MenuItem, error) {
	if err := validateUpdate(&u); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdateMenuItem(ctx, u)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("menu item %d: %w", u.ID, apperr.ErrNotFound)
	}
	return s.repo.ListMenu(ctx, u.RestaurantID)
}

// DeleteMenuItem removes one of the restaurant's items and returns the updated menu.
func (s *Service) DeleteMenuItem(ctx context.Context, restaurantID, itemID int64) ([]domain.MenuItem, error) {
	if itemID <= 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.DeleteMenuItem(ctx, restaurantID, itemID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("menu item %d: %w", itemID, apperr.ErrNotFound)
	}
	return s.repo.ListMenu(ctx, restaurantID)
}
