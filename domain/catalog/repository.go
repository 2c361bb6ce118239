package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Repository provides database operations for products.
//
// The *gorm.DB handed in must be opened with TranslateError enabled so that
// unique-index violations surface as gorm.ErrDuplicatedKey.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new product repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new product. The caller is expected to have derived the
// slug already; a colliding slug fails with ErrDuplicateSlug and leaves the
// catalog unchanged.
func (r *Repository) Create(ctx context.Context, product *Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSlug
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a product by its numeric id. A miss returns (nil, nil):
// cart and checkout treat an unresolvable id as a line to skip, not as an
// error.
func (r *Repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// GetBySlug retrieves a product by its slug, returning ErrNotFound on a miss.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).First(&product, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by slug: %w", err)
	}
	return &product, nil
}

// List retrieves products matching the filter, ordered by id.
// Filter.Query matches case-insensitively as a substring of the name;
// Filter.Category matches exactly; both compose with AND.
func (r *Repository) List(ctx context.Context, filter Filter) ([]Product, error) {
	query := r.db.WithContext(ctx).Order("id ASC")
	if filter.Query != "" {
		query = query.Where("lower(name) LIKE ?", "%"+strings.ToLower(filter.Query)+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var products []Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Delete hard-deletes a product by id. Deleting an absent id fails with
// ErrNotFound; deletion is not idempotent.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of products in the catalog.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Product{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

// Migrate runs database migrations for the product table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&Product{})
}
