package catalog

import (
	"context"
	"errors"

	"github.com/go-monolith/mono"

	domain "github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/catalog"
)

// Sentinel errors do not survive the request-reply bus, so lookup misses and
// slug collisions travel as response fields (Found, Duplicate) and the port
// adapter reconstitutes the domain errors on the calling side.

// createProduct handles the catalog.create service request.
func (m *Module) createProduct(ctx context.Context, req CreateProductRequest, _ *mono.Msg) (CreateProductResponse, error) {
	product, err := m.service.Create(ctx, CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return CreateProductResponse{Duplicate: true}, nil
		}
		return CreateProductResponse{}, err
	}
	return CreateProductResponse{Product: toPayload(product)}, nil
}

// getProduct handles the catalog.get service request.
func (m *Module) getProduct(ctx context.Context, req GetProductRequest, _ *mono.Msg) (GetProductResponse, error) {
	product, err := m.service.GetByID(ctx, req.ID)
	if err != nil {
		return GetProductResponse{}, err
	}
	if product == nil {
		return GetProductResponse{Found: false}, nil
	}
	return GetProductResponse{Found: true, Product: toPayload(product)}, nil
}

// getProductBySlug handles the catalog.get-by-slug service request.
func (m *Module) getProductBySlug(ctx context.Context, req GetProductBySlugRequest, _ *mono.Msg) (GetProductResponse, error) {
	product, err := m.service.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return GetProductResponse{Found: false}, nil
		}
		return GetProductResponse{}, err
	}
	return GetProductResponse{Found: true, Product: toPayload(product)}, nil
}

// listProducts handles the catalog.list service request.
func (m *Module) listProducts(ctx context.Context, req ListProductsRequest, _ *mono.Msg) (ListProductsResponse, error) {
	products, err := m.service.List(ctx, domain.Filter{Query: req.Query, Category: req.Category})
	if err != nil {
		return ListProductsResponse{}, err
	}

	response := ListProductsResponse{
		Products: make([]ProductPayload, 0, len(products)),
		Total:    len(products),
	}
	for i := range products {
		response.Products = append(response.Products, toPayload(&products[i]))
	}
	return response, nil
}

// deleteProduct handles the catalog.delete service request.
func (m *Module) deleteProduct(ctx context.Context, req DeleteProductRequest, _ *mono.Msg) (DeleteProductResponse, error) {
	if err := m.service.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return DeleteProductResponse{Found: false}, nil
		}
		return DeleteProductResponse{}, err
	}
	return DeleteProductResponse{Found: true, Deleted: true}, nil
}
