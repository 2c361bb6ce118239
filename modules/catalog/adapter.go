package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	domain "github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/catalog"
)

// Port is the catalog as seen by other modules. Implementations translate
// the bus response fields back into the domain's sentinel errors, so callers
// get catalog.ErrNotFound / catalog.ErrDuplicateSlug as if the store were
// local.
type Port interface {
	// Create inserts a product, failing with catalog.ErrDuplicateSlug on
	// a slug collision.
	Create(ctx context.Context, in CreateInput) (*domain.Product, error)
	// GetByID resolves a product by id; a miss returns (nil, nil).
	GetByID(ctx context.Context, id uint) (*domain.Product, error)
	// GetBySlug resolves a product by slug, catalog.ErrNotFound on a miss.
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	// List returns products matching the filter.
	List(ctx context.Context, filter domain.Filter) ([]domain.Product, error)
	// Delete hard-deletes a product, catalog.ErrNotFound when absent.
	Delete(ctx context.Context, id uint) error
}

// adapter implements Port over the catalog module's service container.
type adapter struct {
	container mono.ServiceContainer
}

// NewAdapter creates a Port backed by the catalog module's services.
// container is received via SetDependencyServiceContainer.
func NewAdapter(container mono.ServiceContainer) Port {
	if container == nil {
		panic("catalog adapter requires non-nil ServiceContainer")
	}
	return &adapter{container: container}
}

func (a *adapter) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	req := CreateProductRequest{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		Image:       in.Image,
	}
	var resp CreateProductResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create service call failed: %w", err)
	}
	if resp.Duplicate {
		return nil, domain.ErrDuplicateSlug
	}
	return fromPayload(resp.Product), nil
}

func (a *adapter) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	req := GetProductRequest{ID: id}
	var resp GetProductResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get service call failed: %w", err)
	}
	if !resp.Found {
		return nil, nil
	}
	return fromPayload(resp.Product), nil
}

func (a *adapter) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	req := GetProductBySlugRequest{Slug: slug}
	var resp GetProductResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-by-slug", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-by-slug service call failed: %w", err)
	}
	if !resp.Found {
		return nil, domain.ErrNotFound
	}
	return fromPayload(resp.Product), nil
}

func (a *adapter) List(ctx context.Context, filter domain.Filter) ([]domain.Product, error) {
	req := ListProductsRequest{Query: filter.Query, Category: filter.Category}
	var resp ListProductsResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list service call failed: %w", err)
	}
	products := make([]domain.Product, 0, len(resp.Products))
	for _, p := range resp.Products {
		products = append(products, *fromPayload(p))
	}
	return products, nil
}

func (a *adapter) Delete(ctx context.Context, id uint) error {
	req := DeleteProductRequest{ID: id}
	var resp DeleteProductResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("delete service call failed: %w", err)
	}
	if !resp.Found {
		return domain.ErrNotFound
	}
	return nil
}
