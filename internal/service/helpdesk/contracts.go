//go:generate mockgen -source=contracts.go -destination=helpdesk_mocks_test.go -package=helpdesk

package helpdesk

import (
	"context"

	"food-marketplace/internal/domain"
)

type ticketRepository interface {
	Create(ctx context.Context, t *domain.Ticket) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Ticket, error)
	ListByOwner(ctx context.Context, p domain.Principal) ([]domain.Ticket, error)
	List(ctx context.Context, f domain.TicketFilter) ([]domain.Ticket, error)
	Update(ctx context.Context, u domain.TicketUpdate) (bool, error)
}

// Notifier broadcasts ticket notifications.
type Notifier interface {
	Notify(ctx context.Context, n domain.TicketNotification) error
}
