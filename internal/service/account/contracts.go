//go:generate mockgen -source=contracts.go -destination=account_mocks_test.go -package=account

package account

import (
	"context"

	"food-marketplace/internal/domain"
)

type accountRepository interface {
	CreateUser(ctx context.Context, u *domain.User) (int64, error)
	CreateRestaurant(ctx context.Context, r *domain.Restaurant) (int64, error)
	CreateCourier(ctx context.Context, c *domain.Courier) (int64, error)
	EnsureAdmin(ctx context.Context, u *domain.User) (bool, error)
	FindCredentials(ctx context.Context, role domain.Role, email string) (*domain.Credentials, error)
	GetCredentials(ctx context.Context, p domain.Principal) (*domain.Credentials, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type tokenIssuer interface {
	Issue(p domain.Principal) (string, error)
}
