package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"food-marketplace/internal/domain"
)

// RestaurantRepo reads restaurants and manages their menus.
type RestaurantRepo struct{ db *pgxpool.Pool }

// NewRestaurantRepo creates a new RestaurantRepo.
func NewRestaurantRepo(db *pgxpool.Pool) *RestaurantRepo { return &RestaurantRepo{db: db} }

type restaurantRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Address   string    `db:"address"`
	Cuisine   []string  `db:"cuisine"`
	Rating    float64   `db:"rating"`
	IsActive  bool      `db:"is_active"`
	Image     string    `db:"image"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row restaurantRow) toDomain() domain.Restaurant {
	return domain.Restaurant{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		Address:   row.Address,
		Cuisine:   row.Cuisine,
		Rating:    row.Rating,
		IsActive:  row.IsActive,
		Image:     row.Image,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type menuItemRow struct {
	ID           int64  `db:"id"`
	RestaurantID int64  `db:"restaurant_id"`
	Name         string `db:"name"`
	Description  string `db:"description"`
	PriceCents   int64  `db:"price_cents"`
	Category     string `db:"category"`
	IsAvailable  bool   `db:"is_available"`
	Image        string `db:"image"`
}

func (row menuItemRow) toDomain() domain.MenuItem {
	return domain.MenuItem(row)
}

const restaurantColumns = `id, name, email, phone, address, cuisine, rating, is_active, image, created_at, updated_at`

const menuColumns = `id, restaurant_id, name, description, price_cents, category, is_available, image`

// List returns active restaurants with their menus, ordered by id.
func (r *RestaurantRepo) List(ctx context.Context, f domain.RestaurantFilter) ([]domain.Restaurant, error) {
	q := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE is_active`
	args := make([]any, 0, 1)
	if c := strings.TrimSpace(f.Cuisine); c != "" {
		args = append(args, c)
		q += fmt.Sprintf(` AND EXISTS (SELECT 1 FROM unnest(cuisine) AS cu WHERE lower(cu) = lower($%d))`, len(args))
	}
	q += ` ORDER BY id`

	var rows []restaurantRow
	if err := pgxscan.Select(ctx, r.db, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	if len(rows) == 0 {
		return []domain.Restaurant{}, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	var items []menuItemRow
	if err := pgxscan.Select(ctx, r.db, &items,
		`SELECT `+menuColumns+` FROM menu_items WHERE restaurant_id = ANY($1) ORDER BY id`, ids); err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	menus := make(map[int64][]domain.MenuItem, len(rows))
	for _, it := range items {
		menus[it.RestaurantID] = append(menus[it.RestaurantID], it.toDomain())
	}

	out := make([]domain.Restaurant, 0, len(rows))
	for _, row := range rows {
		rest := row.toDomain()
		rest.Menu = menus[row.ID]
		if rest.Menu == nil {
			rest.Menu = []domain.MenuItem{}
		}
		out = append(out, rest)
	}
	return out, nil
}

// Get returns a restaurant with its menu, or (nil, nil).
func (r *RestaurantRepo) Get(ctx context.Context, id int64) (*domain.Restaurant, error) {
	var row restaurantRow
	err := pgxscan.Get(ctx, r.db, &row, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	menu, err := r.ListMenu(ctx, id)
	if err != nil {
		return nil, err
	}
	rest := row.toDomain()
	rest.Menu = menu
	return &rest, nil
}

// ListMenu returns the restaurant's menu ordered by id.
func (r *RestaurantRepo) ListMenu(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error) {
	var rows []menuItemRow
	if err := pgxscan.Select(ctx, r.db, &rows,
		`SELECT `+menuColumns+` FROM menu_items WHERE restaurant_id = $1 ORDER BY id`, restaurantID); err != nil {
		return nil, fmt.Errorf("list menu %d: %w", restaurantID, err)
	}
	out := make([]domain.MenuItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// GetMenuItem returns one item of the restaurant's menu, or (nil, nil).
func (r *RestaurantRepo) GetMenuItem(ctx context.Context, restaurantID, itemID int64) (*domain.MenuItem, error) {
	var row menuItemRow
	err := pgxscan.Get(ctx, r.db, &row,
		`SELECT `+menuColumns+` FROM menu_items WHERE id = $1 AND restaurant_id = $2`, itemID, restaurantID)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item %d: %w", itemID, err)
	}
	it := row.toDomain()
	return &it, nil
}

// AddMenuItem appends an item to the restaurant's menu.
func (r *RestaurantRepo) AddMenuItem(ctx context.Context, it *domain.MenuItem) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO menu_items (restaurant_id, name, description, price_cents, category, is_available, image)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, it.RestaurantID, it.Name, it.Description, it.PriceCents, it.Category, it.IsAvailable, it.Image).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("add menu item: %w", err)
	}
	return id, nil
}

// UpdateMenuItem applies a partial update and returns true if the item belongs to the restaurant.
func (r *RestaurantRepo) UpdateMenuItem(ctx context.Context, u domain.PartialMenuItemUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE menu_items
        SET
            name         = COALESCE($3, name),
            description  = COALESCE($4, description),
            price_cents  = COALESCE($5, price_cents),
            category     = COALESCE($6, category),
            is_available = COALESCE($7, is_available),
            image        = COALESCE($8, image)
        WHERE id = $1 AND restaurant_id = $2
    `, u.ID, u.RestaurantID, u.Name, u.Description, u.PriceCents, u.Category, u.IsAvailable, u.Image)
	if err != nil {
		return false, fmt.Errorf("update menu item %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// DeleteMenuItem removes an item and returns true if it belonged to the restaurant.
func (r *RestaurantRepo) DeleteMenuItem(ctx context.Context, restaurantID, itemID int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1 AND restaurant_id = $2`, itemID, restaurantID)
	if err != nil {
		return false, fmt.Errorf("delete menu item %d: %w", itemID, err)
	}
	return ct.RowsAffected() > 0, nil
}
