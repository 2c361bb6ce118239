package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/cart"
	"github.com/tungnhan410/Cty-ban-lieu-xay-dung/domain/order"
	catalogmod "github.com/tungnhan410/Cty-ban-lieu-xay-dung/modules/catalog"
)

// ErrEmptyCart is returned when checkout is attempted with no cart lines.
// No order is created in that case.
var ErrEmptyCart = errors.New("cart is empty")

// Service materializes carts into orders.
type Service struct {
	repo    *order.Repository
	catalog catalogmod.Port
}

// NewService creates an order service resolving products through the given
// catalog port.
func NewService(repo *order.Repository, catalog catalogmod.Port) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Checkout converts the cart into a persisted, immutable order.
//
// Prices and names are read from the catalog at this moment and snapshotted
// into the order's items in cart order. A line whose product no longer
// resolves is silently skipped, the same drop policy as the cart view, and
// contributes nothing to the total or the snapshot. Stock is never consulted
// or decremented.
func (s *Service) Checkout(ctx context.Context, c cart.Cart) (*order.Order, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	items := make([]order.Item, 0, len(c.Lines))
	var total float64
	for _, line := range c.Lines {
		product, err := s.catalog.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve product %d: %w", line.ProductID, err)
		}
		if product == nil {
			// Dangling line: the product was deleted after it was
			// added to the cart. Skip it.
			continue
		}
		items = append(items, order.Item{
			ProductID: product.ID,
			Name:      product.Name,
			Qty:       line.Qty,
			Price:     product.Price,
		})
		total += product.Price * float64(line.Qty)
	}

	encoded, err := order.EncodeItems(items)
	if err != nil {
		return nil, err
	}

	o := &order.Order{Total: total, Items: encoded}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// List returns all recorded orders, newest first.
func (s *Service) List(ctx context.Context) ([]order.Order, error) {
	return s.repo.List(ctx)
}
