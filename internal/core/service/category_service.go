package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quicktaste/ordering-api/internal/core/authz"
	"github.com/quicktaste/ordering-api/internal/core/domain"
	"github.com/quicktaste/ordering-api/internal/core/ports"
)

// CategoryService implements category CRUD. Writes are admin only.
type CategoryService struct {
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, name string) (*domain.Category, error) {
	return s.categories.FindByName(ctx, name)
}

func (s *CategoryService) Create(ctx context.Context, caller domain.Identity, category domain.Category) (*domain.Category, error) {
	if !authz.CanManageCatalog(caller) {
		return nil, domain.ErrForbidden
	}
	exists, err := s.categories.ExistsByName(ctx, category.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCategoryExists
	}

	created, err := s.categories.Save(ctx, &category)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("category", created.Name).Str("by", caller.Subject).Msg("category created")
	return created, nil
}

// Update changes a category's image. The name is the primary key and
// cannot change.
func (s *CategoryService) Update(ctx context.Context, caller domain.Identity, name string, category domain.Category) (*domain.Category, error) {
	if !authz.CanManageCatalog(caller) {
		return nil, domain.ErrForbidden
	}
	if name != category.Name {
		return nil, domain.ErrImmutableKey
	}

	existing, err := s.categories.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	existing.Image = category.Image

	return s.categories.Save(ctx, existing)
}

func (s *CategoryService) Delete(ctx context.Context, caller domain.Identity, name string) error {
	if !authz.CanManageCatalog(caller) {
		return domain.ErrForbidden
	}
	exists, err := s.categories.ExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrCategoryNotFound
	}
	if err := s.categories.DeleteByName(ctx, name); err != nil {
		return err
	}
	s.logger.Info().Str("category", name).Str("by", caller.Subject).Msg("category deleted")
	return nil
}
