package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"food-marketplace/internal/domain"
)

// CourierRepo represents courier repository.
type CourierRepo struct{ db *pgxpool.Pool }

// NewCourierRepo creates a new CourierRepo.
func NewCourierRepo(db *pgxpool.Pool) *CourierRepo { return &CourierRepo{db: db} }

// Get - returns courier by its ID, or (nil, nil).
func (r *CourierRepo) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	var (
		c  domain.Courier
		vt string
	)
	err := r.db.QueryRow(ctx, `
        SELECT id, name, email, phone, vehicle_type, vehicle_number, is_available, rating, is_active, created_at, updated_at
        FROM couriers WHERE id = $1
    `, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &vt, &c.VehicleNumber,
		&c.IsAvailable, &c.Rating, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier %d: %w", id, err)
	}
	c.VehicleType = domain.VehicleType(vt)
	return &c, nil
}

// SetAvailability updates the availability flag and reports whether the courier exists.
func (r *CourierRepo) SetAvailability(ctx context.Context, id int64, available bool) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE couriers
        SET is_available = $2, updated_at = now()
        WHERE id = $1
    `, id, available)
	if err != nil {
		return false, fmt.Errorf("update courier availability %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
