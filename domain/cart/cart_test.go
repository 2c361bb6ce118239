package cart

import "testing"

func TestCart_AddAccumulates(t *testing.T) {
	var c Cart
	c.Add(1, 2)
	c.Add(1, 3)

	if got := c.Qty(1); got != 5 {
		t.Errorf("Qty(1) = %d, want 5", got)
	}
	if len(c.Lines) != 1 {
		t.Errorf("expected a single accumulated line, got %d", len(c.Lines))
	}
}

func TestCart_AddIgnoresNonPositiveQty(t *testing.T) {
	var c Cart
	c.Add(1, 0)
	c.Add(1, -4)

	if !c.IsEmpty() {
		t.Errorf("expected empty cart, got %+v", c.Lines)
	}
}

func TestCart_RemoveIsIdempotent(t *testing.T) {
	var c Cart
	c.Add(1, 2)
	c.Add(2, 1)

	c.Remove(2)
	c.Remove(2) // absent: no-op
	c.Remove(99)

	if len(c.Lines) != 1 || c.Qty(1) != 2 {
		t.Errorf("expected cart unchanged beyond removed line, got %+v", c.Lines)
	}
}

func TestCart_PreservesInsertionOrder(t *testing.T) {
	var c Cart
	c.Add(3, 1)
	c.Add(1, 1)
	c.Add(2, 1)
	c.Add(3, 1) // accumulate, must not move

	want := []uint{3, 1, 2}
	if len(c.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(c.Lines))
	}
	for i, id := range want {
		if c.Lines[i].ProductID != id {
			t.Errorf("line %d: expected product %d, got %d", i, id, c.Lines[i].ProductID)
		}
	}
}

func TestCart_Clear(t *testing.T) {
	var c Cart
	c.Add(1, 2)
	c.Clear()

	if !c.IsEmpty() {
		t.Errorf("expected empty cart after Clear, got %+v", c.Lines)
	}
}
