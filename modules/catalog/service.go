package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/sync/singleflight"

	domain "github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/catalog"
	"github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/cache"
)

// Service wraps the product repository with an optional cache-aside layer.
// Single-product reads are cached; products are never edited in place, so a
// cached entry only goes stale through deletion, which invalidates it below.
type Service struct {
	repo  *domain.Repository
	cache *cache.Cache // nil disables caching
	group singleflight.Group
}

// NewService creates a catalog service. cache may be nil.
func NewService(repo *domain.Repository, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

// CreateInput holds the fields for a new product.
type CreateInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
	Image       string
}

// Create derives the slug from the name and inserts the product.
// A colliding slug fails with catalog.ErrDuplicateSlug and creates nothing.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("price must be non-negative")
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("stock must be non-negative")
	}

	product := &domain.Product{
		Name:        in.Name,
		Slug:        domain.Slugify(in.Name),
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		Image:       in.Image,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID resolves a product by id, (nil, nil) on a miss.
func (s *Service) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	key := "id:" + strconv.FormatUint(uint64(id), 10)
	return s.cachedGet(ctx, key, func() (*domain.Product, error) {
		return s.repo.GetByID(ctx, id)
	})
}

// GetBySlug resolves a product by slug, catalog.ErrNotFound on a miss.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	p, err := s.cachedGet(ctx, "slug:"+slug, func() (*domain.Product, error) {
		p, err := s.repo.GetBySlug(ctx, slug)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return p, err
	})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// List returns the products matching the filter. Listings are read straight
// from the store; only single-product lookups are cached.
func (s *Service) List(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	return s.repo.List(ctx, filter)
}

// Delete hard-deletes a product and drops its cache entries.
func (s *Service) Delete(ctx context.Context, id uint) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.cache != nil {
		// Best effort: a failed invalidation only extends staleness
		// until the TTL expires.
		_ = s.cache.Delete(ctx, "id:"+strconv.FormatUint(uint64(id), 10))
		_ = s.cache.Delete(ctx, "slug:"+product.Slug)
	}
	return nil
}

// cachedGet serves a single-product read through the cache when one is
// configured, collapsing concurrent fills for the same key. Misses (nil
// products) are never cached.
func (s *Service) cachedGet(ctx context.Context, key string, load func() (*domain.Product, error)) (*domain.Product, error) {
	if s.cache == nil {
		return load()
	}

	var cached domain.Product
	hit, err := s.cache.Get(ctx, key, &cached)
	if err == nil && hit {
		return &cached, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		p, err := load()
		if err != nil {
			return nil, err
		}
		if p != nil {
			_ = s.cache.Set(ctx, key, p)
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	p, _ := v.(*domain.Product)
	return p, nil
}
