package ports

import (
	"context"

	"github.com/quicktaste/ordering-api/internal/core/domain"
)

// UpdateUserInput carries a full user update. An empty Password keeps the
// stored hash; an empty Roles keeps the stored roles. Wallet is never
// touched by a full update.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
	Roles    string
	Image    string
}

// UserService covers profile and account management. Every method takes
// the caller's identity explicitly; authorization decisions happen inside
// against the authz policy.
type UserService interface {
	Profile(ctx context.Context, caller domain.Identity) (*domain.User, error)
	List(ctx context.Context, caller domain.Identity) ([]*domain.User, error)
	GetByUsername(ctx context.Context, caller domain.Identity, username string) (*domain.User, error)
	Update(ctx context.Context, caller domain.Identity, username string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, caller domain.Identity, username string) error
	UpdateWallet(ctx context.Context, caller domain.Identity, username string, wallet int) (*domain.User, error)
}
