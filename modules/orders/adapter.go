package orders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"

	"github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/cart"
	"github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/order"
)

// CheckoutResult is what a successful checkout hands back to callers: the
// order id for the confirmation notice and the computed total.
type CheckoutResult struct {
	OrderID uint
	Total   float64
}

// Port is the orders module as seen by other modules. Checkout restores
// ErrEmptyCart from the in-band response flag.
type Port interface {
	Checkout(ctx context.Context, c cart.Cart) (*CheckoutResult, error)
	List(ctx context.Context) ([]order.Order, error)
}

type adapter struct {
	container mono.ServiceContainer
}

// NewAdapter creates a Port backed by the orders module's services.
func NewAdapter(container mono.ServiceContainer) Port {
	if container == nil {
		panic("orders adapter requires non-nil ServiceContainer")
	}
	return &adapter{container: container}
}

func (a *adapter) Checkout(ctx context.Context, c cart.Cart) (*CheckoutResult, error) {
	req := CheckoutRequest{Lines: make([]CheckoutLine, 0, len(c.Lines))}
	for _, line := range c.Lines {
		req.Lines = append(req.Lines, CheckoutLine{ProductID: line.ProductID, Qty: line.Qty})
	}

	var resp CheckoutResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "checkout", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("checkout service call failed: %w", err)
	}
	if resp.Empty {
		return nil, ErrEmptyCart
	}
	return &CheckoutResult{OrderID: resp.OrderID, Total: resp.Total}, nil
}

func (a *adapter) List(ctx context.Context) ([]order.Order, error) {
	var resp ListOrdersResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list", json.Marshal, json.Unmarshal, &ListOrdersRequest{}, &resp,
	); err != nil {
		return nil, fmt.Errorf("list service call failed: %w", err)
	}
	orders := make([]order.Order, 0, len(resp.Orders))
	for _, o := range resp.Orders {
		orders = append(orders, order.Order{
			ID:        o.ID,
			Total:     o.Total,
			Items:     o.Items,
			CreatedAt: o.CreatedAt,
		})
	}
	return orders, nil
}
