package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/quicktaste/ordering-api/internal/core/authz"
	"github.com/quicktaste/ordering-api/internal/core/domain"
	"github.com/quicktaste/ordering-api/internal/core/ports"
)

// ErrCacheMiss is returned by a Cache when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache abstracts the catalog read-through cache (Redis). A nil Cache
// disables caching; cache failures never fail a request.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const catalogCacheTTL = 30 * time.Second

const (
	cacheKeyAllProducts = "products:all"
	cacheKeyProduct     = "product:"           // + name
	cacheKeyByCategory  = "products:category:" // + category
)

// ProductService implements the product CRUD and the narrow stock, price
// and image updates. List and get reads go through the cache; every write
// invalidates the affected keys.
type ProductService struct {
	products ports.ProductRepository
	cache    Cache
	logger   zerolog.Logger
}

func NewProductService(products ports.ProductRepository, cache Cache, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, cache: cache, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	var cached []*domain.Product
	if s.cacheGet(ctx, cacheKeyAllProducts, &cached) {
		return cached, nil
	}
	list, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyAllProducts, list)
	return list, nil
}

func (s *ProductService) Get(ctx context.Context, name string) (*domain.Product, error) {
	var cached *domain.Product
	if s.cacheGet(ctx, cacheKeyProduct+name, &cached) && cached != nil {
		return cached, nil
	}
	p, err := s.products.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyProduct+name, p)
	return p, nil
}

func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	var cached []*domain.Product
	if s.cacheGet(ctx, cacheKeyByCategory+category, &cached) {
		return cached, nil
	}
	list, err := s.products.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, cacheKeyByCategory+category, list)
	return list, nil
}

func (s *ProductService) Create(ctx context.Context, caller domain.Identity, product domain.Product) (*domain.Product, error) {
	if !authz.CanManageCatalog(caller) {
		return nil, domain.ErrForbidden
	}
	exists, err := s.products.ExistsByName(ctx, product.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrProductExists
	}

	created, err := s.products.Save(ctx, &product)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, created)
	s.logger.Info().Str("product", created.Name).Str("by", caller.Subject).Msg("product created")
	return created, nil
}

// Update replaces every mutable field. The name is the primary key and
// cannot change.
func (s *ProductService) Update(ctx context.Context, caller domain.Identity, name string, product domain.Product) (*domain.Product, error) {
	if !authz.CanManageCatalog(caller) {
		return nil, domain.ErrForbidden
	}
	if name != product.Name {
		return nil, domain.ErrImmutableKey
	}

	existing, err := s.products.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	oldCategory := existing.Category

	existing.Category = product.Category
	existing.Stock = product.Stock
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Image = product.Image

	saved, err := s.products.Save(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, saved)
	if oldCategory != saved.Category {
		s.cacheDelete(ctx, cacheKeyByCategory+oldCategory)
	}
	return saved, nil
}

func (s *ProductService) Delete(ctx context.Context, caller domain.Identity, name string) error {
	if !authz.CanManageCatalog(caller) {
		return domain.ErrForbidden
	}
	existing, err := s.products.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if err := s.products.DeleteByName(ctx, name); err != nil {
		return err
	}
	s.invalidate(ctx, existing)
	s.logger.Info().Str("product", name).Str("by", caller.Subject).Msg("product deleted")
	return nil
}

// UpdateStock sets a product's stock. Any authenticated identity may call
// it: placing an order decrements stock on behalf of regular users.
func (s *ProductService) UpdateStock(ctx context.Context, caller domain.Identity, name string, stock int) (*domain.Product, error) {
	if !authz.CanAdjustProduct(caller) {
		return nil, domain.ErrForbidden
	}
	return s.patch(ctx, name, func(p *domain.Product) { p.Stock = stock })
}

// UpdatePrice sets a product's price. Any authenticated identity.
func (s *ProductService) UpdatePrice(ctx context.Context, caller domain.Identity, name string, price float64) (*domain.Product, error) {
	if !authz.CanAdjustProduct(caller) {
		return nil, domain.ErrForbidden
	}
	return s.patch(ctx, name, func(p *domain.Product) { p.Price = price })
}

// UpdateImage sets a product's image URL. Admin only.
func (s *ProductService) UpdateImage(ctx context.Context, caller domain.Identity, name string, image string) (*domain.Product, error) {
	if !authz.CanManageCatalog(caller) {
		return nil, domain.ErrForbidden
	}
	return s.patch(ctx, name, func(p *domain.Product) { p.Image = image })
}

func (s *ProductService) patch(ctx context.Context, name string, mutate func(*domain.Product)) (*domain.Product, error) {
	existing, err := s.products.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	mutate(existing)
	saved, err := s.products.Save(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, saved)
	return saved, nil
}

// --- cache helpers ---

func (s *ProductService) cacheGet(ctx context.Context, key string, v any) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache entry corrupt")
		return false
	}
	return true
}

func (s *ProductService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), catalogCacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (s *ProductService) cacheDelete(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn().Err(err).Msg("cache invalidation failed")
	}
}

func (s *ProductService) invalidate(ctx context.Context, p *domain.Product) {
	s.cacheDelete(ctx, cacheKeyAllProducts, cacheKeyProduct+p.Name, cacheKeyByCategory+p.Category)
}
