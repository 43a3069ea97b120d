package domain

import "time"

// Restaurant is a restaurant account together with its menu.
type Restaurant struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
	Cuisine      []string
	Rating       float64
	IsActive     bool
	Image        string
	Menu         []MenuItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FindMenuItem returns the menu item with id, if present.
func (r *Restaurant) FindMenuItem(id int64) (MenuItem, bool) {
	for _, it := range r.Menu {
		if it.ID == id {
			return it, true
		}
	}
	return MenuItem{}, false
}

// RestaurantFilter narrows restaurant listings.
type RestaurantFilter struct {
	Cuisine string
}

// MenuItem is a dish offered by a restaurant. Prices are in cents.
type MenuItem struct {
	ID           int64
	RestaurantID int64
	Name         string
	Description  string
	PriceCents   int64
	Category     string
	IsAvailable  bool
	Image        string
}

// PartialMenuItemUpdate carries optional fields to update a menu item.
// A nil field means “do not change” that attribute.
type PartialMenuItemUpdate struct {
	ID           int64
	RestaurantID int64
	Name         *string
	Description  *string
	PriceCents   *int64
	Category     *string
	IsAvailable  *bool
	Image        *string
}

// Empty reports whether the update changes nothing.
func (u PartialMenuItemUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.PriceCents == nil &&
		u.Category == nil && u.IsAvailable == nil && u.Image == nil
}
