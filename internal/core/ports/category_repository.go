package ports

import (
	"context"

	"github.com/quicktaste/ordering-api/internal/core/domain"
)

// CategoryRepository defines persistence for categories, keyed by name.
type CategoryRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context) ([]*domain.Category, error)
	Save(ctx context.Context, category *domain.Category) (*domain.Category, error)
	DeleteByName(ctx context.Context, name string) error
}
