package helpdesk

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"gopkg.in/go-playground/validator.v9"

	"food-marketplace/internal/apperr"
	"food-marketplace/internal/domain"
	"food-marketplace/internal/logx"
)

// TicketInput is the payload of a new help-desk request.
type TicketInput struct {
	Name     string                `json:"name" validate:"required"`
	Email    string                `json:"email" validate:"required,email"`
	Phone    string                `json:"phone"`
	Subject  string                `json:"subject" validate:"required"`
	Message  string                `json:"message" validate:"required"`
	Category domain.TicketCategory `json:"category"`
}

// Service handles help-desk tickets.
type Service struct {
	repo             ticketRepository
	notifier         Notifier
	validate         *validator.Validate
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates a helpdesk Service.
func NewService(r ticketRepository, n Notifier, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	return &Service{
		repo:             r,
		notifier:         n,
		validate:         v,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Create opens a ticket. owner is nil for anonymous requests.
func (s *Service) Create(ctx context.Context, owner *domain.Principal, in TicketInput) (*domain.Ticket, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%s: %w", describe(err), apperr.ErrInvalid)
	}
	if in.Category == "" {
		in.Category = domain.CategoryOther
	}
	if !in.Category.Valid() {
		return nil, fmt.Errorf("category %q: %w", in.Category, apperr.ErrInvalid)
	}

	t := &domain.Ticket{
		Owner:    owner,
		Name:     in.Name,
		Email:    in.Email,
		Phone:    strings.TrimSpace(in.Phone),
		Subject:  in.Subject,
		Message:  in.Message,
		Category: in.Category,
		Status:   domain.TicketOpen,
		Priority: domain.PriorityMedium,
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if _, err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Info("ticket created",
		logx.String("event", "ticket_created"),
		logx.Int64("ticket_id", t.ID),
		logx.String("category", string(t.Category)),
		logx.Bool("anonymous", owner == nil),
	)
	s.notify(ctx, domain.NotificationTicketCreated, t)
	return t, nil
}

// ListMine returns the tickets opened by p, newest first.
func (s *Service) ListMine(ctx context.Context, p domain.Principal) ([]domain.Ticket, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListByOwner(ctx, p)
}

// ListAll returns every ticket matching f, newest first.
func (s *Service) ListAll(ctx context.Context, f domain.TicketFilter) ([]domain.Ticket, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("status %q: %w", f.Status, apperr.ErrInvalid)
	}
	if f.Category != "" && !f.Category.Valid() {
		return nil, fmt.Errorf("category %q: %w", f.Category, apperr.ErrInvalid)
	}
	if f.Priority != "" && !f.Priority.Valid() {
		return nil, fmt.Errorf("priority %q: %w", f.Priority, apperr.ErrInvalid)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, f)
}

// Get returns a ticket visible to p: admins see all, everyone else only their own.
func (s *Service) Get(ctx context.Context, p domain.Principal, id int64) (*domain.Ticket, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("ticket %d: %w", id, apperr.ErrNotFound)
	}
	if p.Role != domain.RoleAdmin && !t.OwnedBy(p) {
		return nil, fmt.Errorf("ticket %d: %w", id, apperr.ErrForbidden)
	}
	return t, nil
}

// Update applies an admin change. Setting a response stamps the response date.
func (s *Service) Update(ctx context.Context, u domain.TicketUpdate) (*domain.Ticket, error) {
	if u.ID <= 0 {
		return nil, apperr.ErrInvalid
	}
	if u.Status == nil && u.Priority == nil && u.AdminResponse == nil {
		return nil, fmt.Errorf("nothing to update: %w", apperr.ErrInvalid)
	}
	if u.Status != nil && !u.Status.Valid() {
		return nil, fmt.Errorf("status %q: %w", *u.Status, apperr.ErrInvalid)
	}
	if u.Priority != nil && !u.Priority.Valid() {
		return nil, fmt.Errorf("priority %q: %w", *u.Priority, apperr.ErrInvalid)
	}
	if u.AdminResponse != nil {
		now := s.now()
		u.ResponseDate = &now
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("ticket %d: %w", u.ID, apperr.ErrNotFound)
	}
	t, err := s.repo.Get(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("ticket %d: %w", u.ID, apperr.ErrNotFound)
	}

	s.logger.Info("ticket updated",
		logx.String("event", "ticket_updated"),
		logx.Int64("ticket_id", t.ID),
		logx.String("status", string(t.Status)),
		logx.String("priority", string(t.Priority)),
	)
	s.notify(ctx, domain.NotificationTicketUpdated, t)
	return t, nil
}

func (s *Service) notify(ctx context.Context, kind string, t *domain.Ticket) {
	if s.notifier == nil {
		return
	}
	n := domain.TicketNotification{
		Kind:      kind,
		TicketID:  t.ID,
		Email:     t.Email,
		Subject:   t.Subject,
		Status:    t.Status,
		Priority:  t.Priority,
		Response:  t.AdminResponse,
		CreatedAt: s.now(),
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.Warn("ticket notification failed",
			logx.Int64("ticket_id", t.ID),
			logx.String("kind", kind),
			logx.Err(err),
		)
	}
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid input"
	}
	fe := verrs[0]
	if fe.Tag() == "email" {
		return "email is invalid"
	}
	return fe.Field() + " is required"
}
