package catalog

import "time"

// Product represents a product in the catalog.
//
// Slug carries a unique index: two products may never share a slug, and the
// store refuses a create whose derived slug collides (see ErrDuplicateSlug).
// Deletion is a hard delete; there is deliberately no gorm.DeletedAt here so
// a second delete of the same id reports not-found instead of succeeding.
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Slug        string    `gorm:"size:200;not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"size:2000" json:"description"`
	Category    string    `gorm:"size:100" json:"category"`
	Price       float64   `gorm:"not null" json:"price"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	Image       string    `gorm:"size:255" json:"image,omitempty"`
}

// TableName returns the table name for the Product model.
func (Product) TableName() string {
	return "products"
}

// Filter narrows a catalog listing. Zero values mean "no constraint";
// both constraints compose with logical AND.
type Filter struct {
	// Query matches as a case-insensitive substring of the product name.
	Query string
	// Category matches exactly.
	Category string
}
