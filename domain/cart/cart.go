// Package cart holds the per-visitor shopping cart.
//
// A cart is ephemeral session state: it is never persisted on its own and
// the web layer threads it through each request via the session, so there is
// no shared mutable cart anywhere in the process.
package cart

// Line is a single cart entry: a product id and the accumulated quantity.
type Line struct {
	ProductID uint
	Qty       int
}

// Cart is an ordered mapping from product id to a positive quantity.
// Lines keep insertion order so the checkout snapshot is stable for a
// given cart. The zero value is an empty, usable cart.
type Cart struct {
	Lines []Line
}

// Add accumulates qty onto any existing line for the product, appending a
// new line otherwise. Quantities are never validated against stock.
// A non-positive qty is ignored.
func (c *Cart) Add(productID uint, qty int) {
	if qty < 1 {
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Qty += qty
			return
		}
	}
	c.Lines = append(c.Lines, Line{ProductID: productID, Qty: qty})
}

// Remove deletes the line for the product. Removing an absent product is a
// no-op, not an error.
func (c *Cart) Remove(productID uint) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Qty returns the quantity for the product, or 0 when absent.
func (c *Cart) Qty(productID uint) int {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line.Qty
		}
	}
	return 0
}

// TotalQty returns the summed quantity across all lines.
func (c *Cart) TotalQty() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Qty
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear empties the cart wholesale.
func (c *Cart) Clear() {
	c.Lines = nil
}
