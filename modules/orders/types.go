package orders

import "time"

// CheckoutLine is one cart entry submitted for checkout, in cart order.
type CheckoutLine struct {
	ProductID uint `json:"product_id"`
	Qty       int  `json:"qty"`
}

// CheckoutRequest is the request for materializing a cart into an order.
type CheckoutRequest struct {
	Lines []CheckoutLine `json:"lines"`
}

// CheckoutResponse is the response after a checkout. Empty reports that the
// cart had no lines: no order was created and the caller should surface a
// notice instead.
type CheckoutResponse struct {
	Empty   bool    `json:"empty"`
	OrderID uint    `json:"order_id"`
	Total   float64 `json:"total"`
}

// ListOrdersRequest is the request for listing recorded orders.
type ListOrdersRequest struct{}

// OrderPayload represents an order in bus responses. Items carries the JSON
// snapshot exactly as persisted.
type OrderPayload struct {
	ID        uint      `json:"id"`
	Total     float64   `json:"total"`
	Items     string    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

// ListOrdersResponse is the response containing all recorded orders.
type ListOrdersResponse struct {
	Orders []OrderPayload `json:"orders"`
	Total  int            `json:"total"`
}
