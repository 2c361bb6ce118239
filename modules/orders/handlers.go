package orders

import (
	"context"
	"errors"

	"github.com/go-monolith/mono"

	"github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/cart"
)

// checkout handles the orders.checkout service request. An empty cart is
// reported in-band so the calling side can reconstitute ErrEmptyCart.
func (m *Module) checkout(ctx context.Context, req CheckoutRequest, _ *mono.Msg) (CheckoutResponse, error) {
	var c cart.Cart
	for _, line := range req.Lines {
		c.Add(line.ProductID, line.Qty)
	}

	o, err := m.service.Checkout(ctx, c)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			return CheckoutResponse{Empty: true}, nil
		}
		return CheckoutResponse{}, err
	}
	return CheckoutResponse{OrderID: o.ID, Total: o.Total}, nil
}

// listOrders handles the orders.list service request.
func (m *Module) listOrders(ctx context.Context, _ ListOrdersRequest, _ *mono.Msg) (ListOrdersResponse, error) {
	orders, err := m.service.List(ctx)
	if err != nil {
		return ListOrdersResponse{}, err
	}

	response := ListOrdersResponse{
		Orders: make([]OrderPayload, 0, len(orders)),
		Total:  len(orders),
	}
	for _, o := range orders {
		response.Orders = append(response.Orders, OrderPayload{
			ID:        o.ID,
			Total:     o.Total,
			Items:     o.Items,
			CreatedAt: o.CreatedAt,
		})
	}
	return response, nil
}
