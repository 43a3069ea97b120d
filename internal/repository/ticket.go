package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"food-marketplace/internal/domain"
)

// TicketRepo stores help-desk tickets.
type TicketRepo struct{ db *pgxpool.Pool }

// NewTicketRepo creates a new TicketRepo.
func NewTicketRepo(db *pgxpool.Pool) *TicketRepo { return &TicketRepo{db: db} }

type ticketRow struct {
	ID            int64      `db:"id"`
	AccountID     *int64     `db:"account_id"`
	AccountRole   *string    `db:"account_role"`
	Name          string     `db:"name"`
	Email         string     `db:"email"`
	Phone         string     `db:"phone"`
	Subject       string     `db:"subject"`
	Message       string     `db:"message"`
	Category      string     `db:"category"`
	Status        string     `db:"status"`
	Priority      string     `db:"priority"`
	AdminResponse string     `db:"admin_response"`
	ResponseDate  *time.Time `db:"response_date"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func (row ticketRow) toDomain() domain.Ticket {
	t := domain.Ticket{
		ID:            row.ID,
		Name:          row.Name,
		Email:         row.Email,
		Phone:         row.Phone,
		Subject:       row.Subject,
		Message:       row.Message,
		Category:      domain.TicketCategory(row.Category),
		Status:        domain.TicketStatus(row.Status),
		Priority:      domain.TicketPriority(row.Priority),
		AdminResponse: row.AdminResponse,
		ResponseDate:  row.ResponseDate,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if row.AccountID != nil && row.AccountRole != nil {
		t.Owner = &domain.Principal{ID: *row.AccountID, Role: domain.Role(*row.AccountRole)}
	}
	return t
}

const ticketColumns = `id, account_id, account_role, name, email, phone, subject, message,
       category, status, priority, admin_response, response_date, created_at, updated_at`

// Create inserts a ticket and fills in its id and timestamps.
func (r *TicketRepo) Create(ctx context.Context, t *domain.Ticket) (int64, error) {
	var (
		accountID   *int64
		accountRole *string
	)
	if t.Owner != nil {
		id, role := t.Owner.ID, string(t.Owner.Role)
		accountID, accountRole = &id, &role
	}
	err := r.db.QueryRow(ctx, `
        INSERT INTO help_tickets (account_id, account_role, name, email, phone, subject, message,
                                  category, status, priority)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at
    `, accountID, accountRole, t.Name, t.Email, t.Phone, t.Subject, t.Message,
		string(t.Category), string(t.Status), string(t.Priority),
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("create ticket: %w", err)
	}
	return t.ID, nil
}

// Get returns a ticket by id, or (nil, nil).
func (r *TicketRepo) Get(ctx context.Context, id int64) (*domain.Ticket, error) {
	var row ticketRow
	if err := pgxscan.Get(ctx, r.db, &row, `SELECT `+ticketColumns+` FROM help_tickets WHERE id = $1`, id); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket %d: %w", id, err)
	}
	t := row.toDomain()
	return &t, nil
}

// ListByOwner returns the tickets opened by p, newest first.
func (r *TicketRepo) ListByOwner(ctx context.Context, p domain.Principal) ([]domain.Ticket, error) {
	return r.selectTickets(ctx, `SELECT `+ticketColumns+`
        FROM help_tickets WHERE account_id = $1 AND account_role = $2
        ORDER BY created_at DESC, id DESC`, p.ID, string(p.Role))
}

// List returns all tickets matching f, newest first.
func (r *TicketRepo) List(ctx context.Context, f domain.TicketFilter) ([]domain.Ticket, error) {
	return r.selectTickets(ctx, `SELECT `+ticketColumns+`
        FROM help_tickets
        WHERE ($1::text = '' OR status = $1)
          AND ($2::text = '' OR category = $2)
          AND ($3::text = '' OR priority = $3)
        ORDER BY created_at DESC, id DESC`, string(f.Status), string(f.Category), string(f.Priority))
}

func (r *TicketRepo) selectTickets(ctx context.Context, q string, args ...any) ([]domain.Ticket, error) {
	var rows []ticketRow
	if err := pgxscan.Select(ctx, r.db, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	out := make([]domain.Ticket, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Update applies the admin-editable fields and reports whether the ticket exists.
func (r *TicketRepo) Update(ctx context.Context, u domain.TicketUpdate) (bool, error) {
	var status, priority *string
	if u.Status != nil {
		s := string(*u.Status)
		status = &s
	}
	if u.Priority != nil {
		p := string(*u.Priority)
		priority = &p
	}
	ct, err := r.db.Exec(ctx, `
        UPDATE help_tickets
        SET
            status         = COALESCE($2, status),
            priority       = COALESCE($3, priority),
            admin_response = COALESCE($4, admin_response),
            response_date  = COALESCE($5, response_date),
            updated_at     = now()
        WHERE id = $1
    `, u.ID, status, priority, u.AdminResponse, u.ResponseDate)
	if err != nil {
		return false, fmt.Errorf("update ticket %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}
