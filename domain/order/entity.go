package order

import (
	"encoding/json"
	"fmt"
	"time"
)

// Order is an immutable record of a completed checkout. Items holds a JSON
// snapshot of the purchased lines taken at checkout time; the order never
// references cart or product rows, so it survives product deletion intact.
type Order struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Total     float64   `gorm:"not null" json:"total"`
	Items     string    `gorm:"type:text;not null" json:"items"`
}

// TableName returns the table name for the Order model.
func (Order) TableName() string {
	return "orders"
}

// Item is one line of the checkout snapshot: the product's id, name and
// unit price as they were at checkout, plus the purchased quantity.
type Item struct {
	ProductID uint    `json:"id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

// EncodeItems serializes the snapshot lines for storage.
func EncodeItems(items []Item) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode order items: %w", err)
	}
	return string(data), nil
}

// DecodeItems deserializes a stored snapshot.
func DecodeItems(encoded string) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal([]byte(encoded), &items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	return items, nil
}
