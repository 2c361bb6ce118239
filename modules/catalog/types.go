package catalog

import (
	"time"

	domain "github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/catalog"
)

// CreateProductRequest is the request for creating a product. The slug is
// derived from the name server-side; callers never supply one.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image,omitempty"`
}

// CreateProductResponse is the response after creating a product.
// Duplicate reports a slug collision: nothing was created and the caller
// must retry with a disambiguated name.
type CreateProductResponse struct {
	Duplicate bool           `json:"duplicate"`
	Product   ProductPayload `json:"product"`
}

// GetProductRequest asks for a product by numeric id.
type GetProductRequest struct {
	ID uint `json:"id"`
}

// GetProductBySlugRequest asks for a product by slug.
type GetProductBySlugRequest struct {
	Slug string `json:"slug"`
}

// GetProductResponse carries a product lookup result. Found is false when
// the id or slug resolves to nothing; that is not an error on the bus
// because cart and checkout treat it as a line to skip.
type GetProductResponse struct {
	Found   bool           `json:"found"`
	Product ProductPayload `json:"product"`
}

// ListProductsRequest filters the catalog listing.
type ListProductsRequest struct {
	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
}

// ListProductsResponse is the response containing the matching products.
type ListProductsResponse struct {
	Products []ProductPayload `json:"products"`
	Total    int              `json:"total"`
}

// DeleteProductRequest asks for a hard delete by id.
type DeleteProductRequest struct {
	ID uint `json:"id"`
}

// DeleteProductResponse reports the outcome of a delete. Found is false
// when the id did not exist; the delete is not idempotent.
type DeleteProductResponse struct {
	Found   bool `json:"found"`
	Deleted bool `json:"deleted"`
}

// ProductPayload represents a product in bus responses.
type ProductPayload struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toPayload(p *domain.Product) ProductPayload {
	return ProductPayload{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
	}
}

func fromPayload(p ProductPayload) *domain.Product {
	return &domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
	}
}
