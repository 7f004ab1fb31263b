package ports

import (
	"context"

	"github.com/quicktaste/ordering-api/internal/core/domain"
)

// CreateOrderInput carries a new order. UserEmail is only honoured for
// admin callers; for everyone else the owner is pinned to the caller.
type CreateOrderInput struct {
	UserEmail string
	Products  []string
	Quantity  int
	Cost      float64
	Address   string
}

// UpdateOrderInput carries a full order update. ID must match the targeted
// order. Status is resolved through the order state machine: non-admin
// requests keep the stored status regardless of this field.
type UpdateOrderInput struct {
	ID        string
	UserEmail string
	Products  []string
	Quantity  int
	Cost      float64
	Address   string
	Status    string
}

// OrderService covers the order lifecycle. All methods take the caller's
// identity; ownership is checked against the order's UserEmail after the
// order has been fetched, so absent orders surface as not-found rather
// than forbidden.
type OrderService interface {
	// List returns every order for admins and only the caller's own
	// orders otherwise.
	List(ctx context.Context, caller domain.Identity) ([]*domain.Order, error)
	Get(ctx context.Context, caller domain.Identity, id string) (*domain.Order, error)
	Create(ctx context.Context, caller domain.Identity, input CreateOrderInput) (*domain.Order, error)
	Update(ctx context.Context, caller domain.Identity, id string, input UpdateOrderInput) (*domain.Order, error)
	Delete(ctx context.Context, caller domain.Identity, id string) error
}
