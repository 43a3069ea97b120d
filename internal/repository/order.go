package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"food-marketplace/internal/apperr"
	"food-marketplace/internal/domain"
)

// OrderRepo represents order repository.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

type orderRow struct {
	ID                  int64      `db:"id"`
	CustomerID          int64      `db:"customer_id"`
	RestaurantID        int64      `db:"restaurant_id"`
	CourierID           *int64     `db:"courier_id"`
	TotalCents          int64      `db:"total_cents"`
	DeliveryAddress     string     `db:"delivery_address"`
	SpecialInstructions string     `db:"special_instructions"`
	Status              string     `db:"status"`
	PaymentStatus       string     `db:"payment_status"`
	DeliveredAt         *time.Time `db:"delivered_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`

	CustomerName      string  `db:"customer_name"`
	CustomerPhone     string  `db:"customer_phone"`
	CustomerAddress   string  `db:"customer_address"`
	RestaurantName    string  `db:"restaurant_name"`
	RestaurantPhone   string  `db:"restaurant_phone"`
	RestaurantAddress string  `db:"restaurant_address"`
	CourierName       *string `db:"courier_name"`
	CourierPhone      *string `db:"courier_phone"`
}

func (row orderRow) toDomain() domain.Order {
	o := domain.Order{
		ID:                  row.ID,
		CustomerID:          row.CustomerID,
		RestaurantID:        row.RestaurantID,
		CourierID:           row.CourierID,
		TotalCents:          row.TotalCents,
		DeliveryAddress:     row.DeliveryAddress,
		SpecialInstructions: row.SpecialInstructions,
		Status:              domain.OrderStatus(row.Status),
		PaymentStatus:       domain.PaymentStatus(row.PaymentStatus),
		DeliveredAt:         row.DeliveredAt,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
		Customer: &domain.Party{
			ID: row.CustomerID, Name: row.CustomerName, Phone: row.CustomerPhone, Address: row.CustomerAddress,
		},
		Restaurant: &domain.Party{
			ID: row.RestaurantID, Name: row.RestaurantName, Phone: row.RestaurantPhone, Address: row.RestaurantAddress,
		},
	}
	if row.CourierID != nil && row.CourierName != nil {
		c := &domain.Party{ID: *row.CourierID, Name: *row.CourierName}
		if row.CourierPhone != nil {
			c.Phone = *row.CourierPhone
		}
		o.Courier = c
	}
	return o
}

type orderItemRow struct {
	OrderID    int64  `db:"order_id"`
	MenuItemID int64  `db:"menu_item_id"`
	Name       string `db:"name"`
	PriceCents int64  `db:"price_cents"`
	Quantity   int    `db:"quantity"`
}

const orderSelect = `
    SELECT o.id, o.customer_id, o.restaurant_id, o.courier_id, o.total_cents,
           o.delivery_address, o.special_instructions, o.status, o.payment_status,
           o.delivered_at, o.created_at, o.updated_at,
           u.name AS customer_name, u.phone AS customer_phone, u.address AS customer_address,
           r.name AS restaurant_name, r.phone AS restaurant_phone, r.address AS restaurant_address,
           c.name AS courier_name, c.phone AS courier_phone
    FROM orders o
    JOIN users u ON u.id = o.customer_id
    JOIN restaurants r ON r.id = o.restaurant_id
    LEFT JOIN couriers c ON c.id = o.courier_id`

// Create inserts the order and its items in one transaction.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) (int64, error) {
	var id int64
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
            INSERT INTO orders (customer_id, restaurant_id, total_cents, delivery_address,
                                special_instructions, status, payment_status)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            RETURNING id, created_at, updated_at
        `, o.CustomerID, o.RestaurantID, o.TotalCents, o.DeliveryAddress,
			o.SpecialInstructions, string(o.Status), string(o.PaymentStatus),
		).Scan(&id, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, it := range o.Items {
			batch.Queue(`
                INSERT INTO order_items (order_id, menu_item_id, name, price_cents, quantity)
                VALUES ($1, $2, $3, $4, $5)
            `, id, it.MenuItemID, it.Name, it.PriceCents, it.Quantity)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		if IsForeignKey(err) {
			return 0, fmt.Errorf("create order: %w", apperr.ErrNotFound)
		}
		return 0, fmt.Errorf("create order: %w", err)
	}
	o.ID = id
	return id, nil
}

// Get returns an order with its items and parties, or (nil, nil).
func (r *OrderRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	var row orderRow
	if err := pgxscan.Get(ctx, r.db, &row, orderSelect+` WHERE o.id = $1`, id); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	orders, err := r.withItems(ctx, []orderRow{row})
	if err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// List returns the orders selected by q. Available orders come oldest first,
// everything else newest first.
func (r *OrderRepo) List(ctx context.Context, q domain.OrderQuery) ([]domain.Order, error) {
	var (
		where string
		args  []any
		order = ` ORDER BY o.created_at DESC, o.id DESC`
	)
	switch {
	case q.Available:
		where = ` WHERE o.status = 'ready' AND o.courier_id IS NULL`
		order = ` ORDER BY o.created_at ASC, o.id ASC`
	case q.CustomerID > 0:
		where, args = ` WHERE o.customer_id = $1`, []any{q.CustomerID}
	case q.RestaurantID > 0:
		where, args = ` WHERE o.restaurant_id = $1`, []any{q.RestaurantID}
	case q.CourierID > 0:
		where, args = ` WHERE o.courier_id = $1`, []any{q.CourierID}
	default:
		return nil, fmt.Errorf("list orders: empty query: %w", apperr.ErrInvalid)
	}

	var rows []orderRow
	if err := pgxscan.Select(ctx, r.db, &rows, orderSelect+where+order, args...); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return r.withItems(ctx, rows)
}

func (r *OrderRepo) withItems(ctx context.Context, rows []orderRow) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var items []orderItemRow
	if err := pgxscan.Select(ctx, r.db, &items, `
        SELECT order_id, menu_item_id, name, price_cents, quantity
        FROM order_items WHERE order_id = ANY($1) ORDER BY id
    `, ids); err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	byOrder := make(map[int64][]domain.OrderItem, len(rows))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], domain.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			PriceCents: it.PriceCents,
			Quantity:   it.Quantity,
		})
	}

	for _, row := range rows {
		o := row.toDomain()
		o.Items = byOrder[row.ID]
		out = append(out, o)
	}
	return out, nil
}

// UpdateStatus moves the order to `to` if it is in one of `from` and belongs
// to the scope. It reports whether a row was updated.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, scope domain.TransitionScope, from []domain.OrderStatus, to domain.OrderStatus) (bool, error) {
	if len(from) == 0 {
		return false, nil
	}
	fromStr := make([]string, 0, len(from))
	for _, s := range from {
		fromStr = append(fromStr, string(s))
	}
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET status       = $2::text,
            delivered_at = CASE WHEN $2::text = 'delivered' THEN now() ELSE delivered_at END,
            updated_at   = now()
        WHERE id = $1
          AND status = ANY($3)
          AND ($4::bigint = 0 OR restaurant_id = $4)
          AND ($5::bigint = 0 OR courier_id = $5)
    `, id, string(to), fromStr, scope.RestaurantID, scope.CourierID)
	if err != nil {
		return false, fmt.Errorf("update order status %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Assign gives a ready, unassigned order to the courier and marks it picked.
// It reports whether the order was assigned by this call.
func (r *OrderRepo) Assign(ctx context.Context, id, courierID int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET courier_id = $2, status = 'picked', updated_at = now()
        WHERE id = $1 AND status = 'ready' AND courier_id IS NULL
    `, id, courierID)
	if err != nil {
		return false, fmt.Errorf("assign order %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// AppendEvent records an order status change in the tracking log. Statuses
// never repeat within an order, so a redelivered event is a no-op.
func (r *OrderRepo) AppendEvent(ctx context.Context, e domain.OrderEvent) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO order_event_log (order_id, status, courier_id, occurred_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (order_id, status) DO NOTHING
    `, e.OrderID, string(e.Status), e.CourierID, e.OccurredAt)
	if err != nil {
		if IsForeignKey(err) {
			return fmt.Errorf("append order event %d: %w", e.OrderID, apperr.ErrNotFound)
		}
		return fmt.Errorf("append order event %d: %w", e.OrderID, err)
	}
	return nil
}

// History returns the tracking log of an order, oldest first.
func (r *OrderRepo) History(ctx context.Context, orderID int64) ([]domain.OrderHistoryEntry, error) {
	out := make([]domain.OrderHistoryEntry, 0)
	if err := pgxscan.Select(ctx, r.db, &out, `
        SELECT id, order_id, status, courier_id, occurred_at
        FROM order_event_log WHERE order_id = $1
        ORDER BY occurred_at, id
    `, orderID); err != nil {
		return nil, fmt.Errorf("order history %d: %w", orderID, err)
	}
	return out, nil
}
