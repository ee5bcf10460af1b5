package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	catalog "github.com/Axocidue/SportsStore/internal/domains/catalog/model"
)

// CartLine is one distinct product within a cart. A cart holds at most one
// line per product ID; adding the same product again merges quantities.
type CartLine struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal is price x quantity for this line
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the session-scoped shopping cart aggregate. Lines keep their
// first-add position; merging quantities never reorders them.
//
// A Cart is owned by exactly one browsing session and is not safe for
// concurrent use. The embedding layer guarantees single-writer access per
// session key.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem puts quantity units of the product into the cart. If a line for
// the product already exists its quantity is incremented in place,
// otherwise a new line is appended. Non-positive quantities are contract
// violations and rejected.
func (c *Cart) AddItem(p catalog.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity += quantity
			return nil
		}
	}

	c.lines = append(c.lines, CartLine{Product: p, Quantity: quantity})
	return nil
}

// RemoveLine drops the line for the given product ID. Removing a product
// that is not in the cart is a no-op.
func (c *Cart) RemoveLine(productID int64) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns the cart lines in insertion order. The returned slice is
// a copy; mutating it does not affect the cart.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// ComputeTotalValue sums price x quantity over all lines. The total is
// recomputed on every call rather than cached, so a cart never reports a
// stale figure after catalog price data changes.
func (c *Cart) ComputeTotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Clear empties the cart. Idempotent.
func (c *Cart) Clear() {
	c.lines = nil
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemsCount is the total number of units across all lines
func (c *Cart) ItemsCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// cartState is the serialized form used by the cart store
type cartState struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(cartState{Lines: c.lines})
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var state cartState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	c.lines = state.Lines
	return nil
}
