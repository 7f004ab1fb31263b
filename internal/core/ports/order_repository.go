package ports

import (
	"context"

	"github.com/quicktaste/ordering-api/internal/core/domain"
)

// OrderRepository defines persistence for orders. Save inserts a new
// document when the order carries no ID (generating one) and replaces the
// existing document otherwise. FindByUserEmail is the owner equality query
// backing the non-admin list view.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindAll(ctx context.Context) ([]*domain.Order, error)
	FindByUserEmail(ctx context.Context, userEmail string) ([]*domain.Order, error)
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	DeleteByID(ctx context.Context, id string) error
}
