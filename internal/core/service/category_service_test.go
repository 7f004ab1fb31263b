package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quicktaste/ordering-api/internal/core/domain"
)

type stubCategoryRepo struct {
	categories map[string]*domain.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	c, ok := r.categories[name]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	_, ok := r.categories[name]
	return ok, nil
}

func (r *stubCategoryRepo) FindAll(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCategoryRepo) Save(_ context.Context, category *domain.Category) (*domain.Category, error) {
	clone := *category
	r.categories[category.Name] = &clone
	return category, nil
}

func (r *stubCategoryRepo) DeleteByName(_ context.Context, name string) error {
	delete(r.categories, name)
	return nil
}

func TestCategoryWrites_AdminOnly(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())
	cat := domain.Category{Name: "drinks"}

	if _, err := svc.Create(context.Background(), aliceIdent, cat); err != domain.ErrForbidden {
		t.Fatalf("create: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Update(context.Background(), aliceIdent, "drinks", cat); err != domain.ErrForbidden {
		t.Fatalf("update: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), aliceIdent, "drinks"); err != domain.ErrForbidden {
		t.Fatalf("delete: expected ErrForbidden, got %v", err)
	}
}

func TestCategoryCreate_Duplicate(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), adminIdent, domain.Category{Name: "drinks"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), adminIdent, domain.Category{Name: "drinks"}); err != domain.ErrCategoryExists {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCategoryUpdate_NameImmutable(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())
	if _, err := svc.Create(context.Background(), adminIdent, domain.Category{Name: "drinks"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(context.Background(), adminIdent, "drinks", domain.Category{Name: "food"}); err != domain.ErrImmutableKey {
		t.Fatalf("expected ErrImmutableKey, got %v", err)
	}

	updated, err := svc.Update(context.Background(), adminIdent, "drinks", domain.Category{Name: "drinks", Image: "cup.png"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Image != "cup.png" {
		t.Fatalf("image = %q", updated.Image)
	}
}

func TestCategoryDelete_NotFound(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())
	if err := svc.Delete(context.Background(), adminIdent, "ghost"); err != domain.ErrCategoryNotFound {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryReads_NoPolicy(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, zerolog.Nop())
	if _, err := svc.Create(context.Background(), adminIdent, domain.Category{Name: "drinks"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := svc.List(context.Background())
	if err != nil || len(all) != 1 {
		t.Fatalf("list: %v, %d items", err, len(all))
	}
	if _, err := svc.Get(context.Background(), "drinks"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if _, err := svc.Get(context.Background(), "ghost"); err != domain.ErrCategoryNotFound {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
