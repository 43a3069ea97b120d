package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"food-marketplace/internal/apperr"
	"food-marketplace/internal/domain"
)

// AccountRepo stores customer, admin, restaurant and courier accounts.
// Each account type lives in its own table, so email uniqueness is per type.
type AccountRepo struct{ db *pgxpool.Pool }

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(db *pgxpool.Pool) *AccountRepo { return &AccountRepo{db: db} }

// CreateUser inserts a customer or admin.
func (r *AccountRepo) CreateUser(ctx context.Context, u *domain.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO users (name, email, password_hash, phone, address, role)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, u.Name, u.Email, u.PasswordHash, u.Phone, u.Address, string(u.Role)).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, fmt.Errorf("user %q: %w", u.Email, apperr.ErrConflict)
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// CreateRestaurant inserts a restaurant account without menu items.
func (r *AccountRepo) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) (int64, error) {
	cuisine := rest.Cuisine
	if cuisine == nil {
		cuisine = []string{}
	}
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO restaurants (name, email, password_hash, phone, address, cuisine, image)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, rest.Name, rest.Email, rest.PasswordHash, rest.Phone, rest.Address, cuisine, rest.Image).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, fmt.Errorf("restaurant %q: %w", rest.Email, apperr.ErrConflict)
		}
		return 0, fmt.Errorf("create restaurant: %w", err)
	}
	return id, nil
}

// CreateCourier inserts a delivery account.
func (r *AccountRepo) CreateCourier(ctx context.Context, c *domain.Courier) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO couriers (name, email, password_hash, phone, vehicle_type, vehicle_number)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, c.Name, c.Email, c.PasswordHash, c.Phone, string(c.VehicleType), c.VehicleNumber).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, fmt.Errorf("courier %q: %w", c.Email, apperr.ErrConflict)
		}
		return 0, fmt.Errorf("create courier: %w", err)
	}
	return id, nil
}

// EnsureAdmin inserts u as an admin unless an account with that email exists.
// It reports whether a row was created.
func (r *AccountRepo) EnsureAdmin(ctx context.Context, u *domain.User) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        INSERT INTO users (name, email, password_hash, phone, address, role)
        VALUES ($1, $2, $3, '', '', 'admin')
        ON CONFLICT (email) DO NOTHING
    `, u.Name, u.Email, u.PasswordHash)
	if err != nil {
		return false, fmt.Errorf("ensure admin: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

// credentialsQuery returns the lookup query for the table that stores role.
// Customers and admins share the users table and keep their role in a column.
func credentialsQuery(role domain.Role, by string) (string, bool) {
	switch role {
	case domain.RoleCustomer, domain.RoleAdmin:
		return `SELECT id, name, email, password_hash, role, is_active FROM users WHERE ` + by, true
	case domain.RoleRestaurant:
		return `SELECT id, name, email, password_hash, 'restaurant', is_active FROM restaurants WHERE ` + by, true
	case domain.RoleDelivery:
		return `SELECT id, name, email, password_hash, 'delivery', is_active FROM couriers WHERE ` + by, true
	}
	return "", false
}

// FindCredentials looks up an account by email in the table that backs role.
// It returns (nil, nil) if no such account exists.
func (r *AccountRepo) FindCredentials(ctx context.Context, role domain.Role, email string) (*domain.Credentials, error) {
	q, ok := credentialsQuery(role, "email = $1")
	if !ok {
		return nil, fmt.Errorf("role %q: %w", role, apperr.ErrInvalid)
	}
	return r.scanCredentials(ctx, q, email)
}

// GetCredentials looks up the account a token principal refers to.
// A customer/admin row whose stored role differs from the token role is treated as missing.
func (r *AccountRepo) GetCredentials(ctx context.Context, p domain.Principal) (*domain.Credentials, error) {
	q, ok := credentialsQuery(p.Role, "id = $1")
	if !ok {
		return nil, fmt.Errorf("role %q: %w", p.Role, apperr.ErrInvalid)
	}
	c, err := r.scanCredentials(ctx, q, p.ID)
	if err != nil || c == nil {
		return nil, err
	}
	if c.Role != p.Role {
		return nil, nil
	}
	return c, nil
}

func (r *AccountRepo) scanCredentials(ctx context.Context, q string, arg any) (*domain.Credentials, error) {
	var (
		c    domain.Credentials
		role string
	)
	err := r.db.QueryRow(ctx, q, arg).Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &role, &c.IsActive)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find credentials: %w", err)
	}
	c.Role = domain.Role(role)
	return &c, nil
}
