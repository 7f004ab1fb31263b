package ports

import (
	"context"

	"github.com/quicktaste/ordering-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Username is the
// lookup key; Save upserts the full record.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteByUsername(ctx context.Context, username string) error
}
