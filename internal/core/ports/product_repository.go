package ports

import (
	"context"

	"github.com/quicktaste/ordering-api/internal/core/domain"
)

// ProductRepository defines persistence for catalog products, keyed by
// name, plus the category equality query the catalog endpoint needs.
type ProductRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteByName(ctx context.Context, name string) error
}
