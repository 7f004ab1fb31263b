package ports

import (
	"context"

	"github.com/quicktaste/ordering-api/internal/core/domain"
)

// CategoryService covers the category CRUD. Reads require only an
// authenticated caller (enforced at the transport layer); writes consult
// the authz policy with the explicit identity.
type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, name string) (*domain.Category, error)
	Create(ctx context.Context, caller domain.Identity, category domain.Category) (*domain.Category, error)
	Update(ctx context.Context, caller domain.Identity, name string, category domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, caller domain.Identity, name string) error
}

// ProductService covers the product CRUD plus the narrow stock, price and
// image updates.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, name string) (*domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	Create(ctx context.Context, caller domain.Identity, product domain.Product) (*domain.Product, error)
	Update(ctx context.Context, caller domain.Identity, name string, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, caller domain.Identity, name string) error
	UpdateStock(ctx context.Context, caller domain.Identity, name string, stock int) (*domain.Product, error)
	UpdatePrice(ctx context.Context, caller domain.Identity, name string, price float64) (*domain.Product, error)
	UpdateImage(ctx context.Context, caller domain.Identity, name string, image string) (*domain.Product, error)
}
