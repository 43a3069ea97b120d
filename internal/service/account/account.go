package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/go-playground/validator.v9"

	"food-marketplace/internal/apperr"
	"food-marketplace/internal/auth"
	"food-marketplace/internal/domain"
	"food-marketplace/internal/logx"
)

// ErrInvalidCredentials is returned by Login for an unknown email or a wrong password.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthorized)

// RegisterInput is the sign-up payload. Fields not used by a role are ignored.
type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	Phone         string
	Address       string
	Cuisine       []string
	Image         string
	VehicleType   string
	VehicleNumber string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token   string
	Profile domain.Profile
}

// AdminSeed describes the administrator created at start-up.
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

// Service registers and authenticates accounts of every role.
type Service struct {
	repo             accountRepository
	hasher           passwordHasher
	tokens           tokenIssuer
	validate         *validator.Validate
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates an account Service.
func NewService(r accountRepository, h passwordHasher, t tokenIssuer, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		hasher:           h,
		tokens:           t,
		validate:         newValidator(),
		operationTimeout: timeout,
		logger:           logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Register creates an account of the given role and issues its first token.
func (s *Service) Register(ctx context.Context, role domain.Role, in RegisterInput) (AuthResult, error) {
	if !role.Registrable() {
		return AuthResult{}, fmt.Errorf("role %q: %w", role, apperr.ErrNotFound)
	}
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)

	form, _ := formFor(role, in)
	if err := s.validate.Struct(form); err != nil {
		return AuthResult{}, fmt.Errorf("%s: %w", describe(err), apperr.ErrInvalid)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return AuthResult{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var id int64
	switch role {
	case domain.RoleCustomer:
		id, err = s.repo.CreateUser(ctx, &domain.User{
			Name: in.Name, Email: in.Email, PasswordHash: hash,
			Phone: in.Phone, Address: in.Address, Role: domain.RoleCustomer,
		})
	case domain.RoleRestaurant:
		id, err = s.repo.CreateRestaurant(ctx, &domain.Restaurant{
			Name: in.Name, Email: in.Email, PasswordHash: hash,
			Phone: in.Phone, Address: in.Address, Cuisine: in.Cuisine, Image: in.Image,
		})
	case domain.RoleDelivery:
		id, err = s.repo.CreateCourier(ctx, &domain.Courier{
			Name: in.Name, Email: in.Email, PasswordHash: hash, Phone: in.Phone,
			VehicleType: domain.VehicleType(in.VehicleType), VehicleNumber: in.VehicleNumber,
		})
	}
	if err != nil {
		return AuthResult{}, err
	}

	s.logger.Info("account registered",
		logx.String("event", "account_registered"),
		logx.Int64("account_id", id),
		logx.String("role", string(role)),
	)
	return s.issue(domain.Profile{ID: id, Name: in.Name, Email: in.Email, Role: role})
}

// Login checks the password of the account with email in the table backing role.
// Customers and admins log in through the customer role and get their stored role back.
func (s *Service) Login(ctx context.Context, role domain.Role, email, password string) (AuthResult, error) {
	if !role.Registrable() {
		return AuthResult{}, fmt.Errorf("role %q: %w", role, apperr.ErrNotFound)
	}
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, fmt.Errorf("email and password are required: %w", apperr.ErrInvalid)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c, err := s.repo.FindCredentials(ctx, role, email)
	if err != nil {
		return AuthResult{}, err
	}
	if c == nil || !c.IsActive {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(c.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}
	return s.issue(domain.Profile{ID: c.ID, Name: c.Name, Email: c.Email, Role: c.Role})
}

// Lookup resolves the active account behind a verified token.
func (s *Service) Lookup(ctx context.Context, p domain.Principal) (*domain.Credentials, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c, err := s.repo.GetCredentials(ctx, p)
	if err != nil {
		return nil, err
	}
	if c == nil || !c.IsActive {
		return nil, fmt.Errorf("account %s/%d: %w", p.Role, p.ID, apperr.ErrUnauthorized)
	}
	return c, nil
}

// Profile returns the public view of the caller's account.
func (s *Service) Profile(ctx context.Context, p domain.Principal) (domain.Profile, error) {
	c, err := s.Lookup(ctx, p)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{ID: c.ID, Name: c.Name, Email: c.Email, Role: c.Role}, nil
}

// EnsureAdmin creates the configured administrator if it does not exist yet.
func (s *Service) EnsureAdmin(ctx context.Context, seed AdminSeed) error {
	email := normalizeEmail(seed.Email)
	if email == "" || seed.Password == "" {
		return fmt.Errorf("admin email and password are required: %w", apperr.ErrInvalid)
	}
	name := strings.TrimSpace(seed.Name)
	if name == "" {
		name = "Administrator"
	}
	hash, err := s.hasher.Hash(seed.Password)
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	created, err := s.repo.EnsureAdmin(ctx, &domain.User{Name: name, Email: email, PasswordHash: hash, Role: domain.RoleAdmin})
	if err != nil {
		return err
	}
	if created {
		s.logger.Info("admin account created", logx.String("email", email))
	}
	return nil
}

func (s *Service) issue(p domain.Profile) (AuthResult, error) {
	token, err := s.tokens.Issue(domain.Principal{ID: p.ID, Role: p.Role})
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, Profile: p}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// describe turns validator errors into a short client-facing message.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid input"
	}
	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "email is invalid"
	case "min":
		return fmt.Sprintf("%s must be at least %s long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s long", field, fe.Param())
	case "vehicle_type":
		return "vehicle_type must be one of bike, car, bicycle"
	}
	return field + " is invalid"
}
