package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quicktaste/ordering-api/internal/core/domain"
	"github.com/quicktaste/ordering-api/internal/core/ports"
)

type stubOrderService struct {
	listFn   func(ctx context.Context, caller domain.Identity) ([]*domain.Order, error)
	getFn    func(ctx context.Context, caller domain.Identity, id string) (*domain.Order, error)
	createFn func(ctx context.Context, caller domain.Identity, input ports.CreateOrderInput) (*domain.Order, error)
	updateFn func(ctx context.Context, caller domain.Identity, id string, input ports.UpdateOrderInput) (*domain.Order, error)
	deleteFn func(ctx context.Context, caller domain.Identity, id string) error
}

func (s *stubOrderService) List(ctx context.Context, caller domain.Identity) ([]*domain.Order, error) {
	return s.listFn(ctx, caller)
}

func (s *stubOrderService) Get(ctx context.Context, caller domain.Identity, id string) (*domain.Order, error) {
	return s.getFn(ctx, caller, id)
}

func (s *stubOrderService) Create(ctx context.Context, caller domain.Identity, input ports.CreateOrderInput) (*domain.Order, error) {
	return s.createFn(ctx, caller, input)
}

func (s *stubOrderService) Update(ctx context.Context, caller domain.Identity, id string, input ports.UpdateOrderInput) (*domain.Order, error) {
	return s.updateFn(ctx, caller, id, input)
}

func (s *stubOrderService) Delete(ctx context.Context, caller domain.Identity, id string) error {
	return s.deleteFn(ctx, caller, id)
}

func withIdentity(c echo.Context, ident domain.Identity) {
	c.Set("identity", ident)
}

func TestOrderHandler_Create_Success(t *testing.T) {
	caller := domain.Identity{Subject: "alice", Roles: []string{domain.RoleUser}}
	stub := &stubOrderService{
		createFn: func(ctx context.Context, got domain.Identity, input ports.CreateOrderInput) (*domain.Order, error) {
			if got.Subject != caller.Subject {
				t.Fatalf("caller = %q, want alice", got.Subject)
			}
			if len(input.Products) != 2 || input.Quantity != 3 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Order{
				ID:        "68b1c0ffee0000000000aaaa",
				UserEmail: got.Subject,
				Products:  input.Products,
				Quantity:  input.Quantity,
				Cost:      input.Cost,
				Address:   input.Address,
				Status:    domain.StatusPending,
			}, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/orders",
		`{"products":["tacos","agua"],"quantity":3,"cost":12.5,"address":"Calle 1"}`)
	withIdentity(c, caller)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != string(domain.StatusPending) {
		t.Fatalf("status = %v, want PENDING", resp["status"])
	}
}

func TestOrderHandler_Create_MissingIdentity(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(ctx context.Context, caller domain.Identity, input ports.CreateOrderInput) (*domain.Order, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/orders",
		`{"products":["tacos"],"quantity":1,"cost":5,"address":"Calle 1"}`)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401", err)
	}
}

func TestOrderHandler_Create_InvalidPayload(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(ctx context.Context, caller domain.Identity, input ports.CreateOrderInput) (*domain.Order, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewOrderHandler(stub)

	// Empty product list fails validation.
	c, _ := newTestContext(t, http.MethodPost, "/orders",
		`{"products":[],"quantity":1,"cost":5,"address":"Calle 1"}`)
	withIdentity(c, domain.Identity{Subject: "alice", Roles: []string{domain.RoleUser}})

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
}

func TestOrderHandler_Get_NotFound(t *testing.T) {
	stub := &stubOrderService{
		getFn: func(ctx context.Context, caller domain.Identity, id string) (*domain.Order, error) {
			return nil, domain.ErrOrderNotFound
		},
	}
	handler := NewOrderHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/orders/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	withIdentity(c, domain.Identity{Subject: "alice", Roles: []string{domain.RoleUser}})

	if err := handler.Get(c); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestOrderHandler_Get_Forbidden(t *testing.T) {
	stub := &stubOrderService{
		getFn: func(ctx context.Context, caller domain.Identity, id string) (*domain.Order, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewOrderHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/orders/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	withIdentity(c, domain.Identity{Subject: "bob", Roles: []string{domain.RoleUser}})

	if err := handler.Get(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestOrderHandler_List_PassesCaller(t *testing.T) {
	caller := domain.Identity{Subject: "root", Roles: []string{domain.RoleUser, domain.RoleAdmin}}
	stub := &stubOrderService{
		listFn: func(ctx context.Context, got domain.Identity) ([]*domain.Order, error) {
			if !got.HasRole(domain.RoleAdmin) {
				t.Fatalf("admin role lost in transit")
			}
			return []*domain.Order{}, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/orders", "")
	withIdentity(c, caller)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_Delete_Success(t *testing.T) {
	stub := &stubOrderService{
		deleteFn: func(ctx context.Context, caller domain.Identity, id string) error {
			if id != "abc" {
				t.Fatalf("id = %q, want abc", id)
			}
			return nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/orders/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	withIdentity(c, domain.Identity{Subject: "alice", Roles: []string{domain.RoleUser}})

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
