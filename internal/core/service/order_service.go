package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quicktaste/ordering-api/internal/core/authz"
	"github.com/quicktaste/ordering-api/internal/core/domain"
	"github.com/quicktaste/ordering-api/internal/core/ports"
)

// OrderService implements the order lifecycle. Ownership is resolved
// against the stored order, so every ownership-gated operation fetches
// first: an absent order is not-found, never forbidden.
type OrderService struct {
	orders ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

// List returns every order for admins; everyone else gets only orders
// whose owner matches the caller.
func (s *OrderService) List(ctx context.Context, caller domain.Identity) ([]*domain.Order, error) {
	if authz.IsAdmin(caller) {
		return s.orders.FindAll(ctx)
	}
	return s.orders.FindByUserEmail(ctx, caller.Subject)
}

func (s *OrderService) Get(ctx context.Context, caller domain.Identity, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.IsOwnerOrAdmin(caller, order.UserEmail) {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// Create places a new order in PENDING. Non-admin callers always own what
// they create: any owner in the payload is overwritten with the caller's
// subject. Admins may create on behalf of an arbitrary owner.
func (s *OrderService) Create(ctx context.Context, caller domain.Identity, input ports.CreateOrderInput) (*domain.Order, error) {
	owner := input.UserEmail
	if !authz.IsAdmin(caller) {
		owner = caller.Subject
	}

	order := &domain.Order{
		UserEmail: owner,
		Products:  input.Products,
		Quantity:  input.Quantity,
		Cost:      input.Cost,
		Address:   input.Address,
		Status:    domain.StatusPending,
	}

	created, err := s.orders.Save(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", created.ID).
		Str("owner", created.UserEmail).
		Str("by", caller.Subject).
		Msg("order created")
	return created, nil
}

// Update replaces an order's mutable fields. The status field runs through
// the state machine: owners keep the stored status no matter what they
// submit, admins may set PENDING or DELIVERED and nothing else. Nothing is
// persisted when a check fails.
func (s *OrderService) Update(ctx context.Context, caller domain.Identity, id string, input ports.UpdateOrderInput) (*domain.Order, error) {
	existing, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.IsOwnerOrAdmin(caller, existing.UserEmail) {
		return nil, domain.ErrForbidden
	}
	if input.ID != id {
		return nil, domain.ErrImmutableKey
	}

	isAdmin := authz.IsAdmin(caller)
	status, err := domain.NextStatus(isAdmin, existing.Status, domain.OrderStatus(input.Status))
	if err != nil {
		return nil, err
	}

	// Only admins may reassign ownership; the owner field in a regular
	// caller's payload is discarded, like the status field.
	if isAdmin && input.UserEmail != "" {
		existing.UserEmail = input.UserEmail
	}
	existing.Products = input.Products
	existing.Quantity = input.Quantity
	existing.Cost = input.Cost
	existing.Address = input.Address
	existing.Status = status

	saved, err := s.orders.Save(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", id).
		Str("status", string(saved.Status)).
		Str("by", caller.Subject).
		Msg("order updated")
	return saved, nil
}

func (s *OrderService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	existing, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.IsOwnerOrAdmin(caller, existing.UserEmail) {
		return domain.ErrForbidden
	}
	if err := s.orders.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("order_id", id).Str("by", caller.Subject).Msg("order deleted")
	return nil
}
