package domain

import "github.com/shopspring/decimal"

// TaxRate is the single fixed sales-tax rate applied to every cart.
var TaxRate = decimal.New(7, -2)

// CartLine is one distinct item in the cart. Lines aggregate: scanning the
// same item id again increments Quantity instead of adding a second line.
type CartLine struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Image    string
	Quantity int
}

// LineTotal returns price multiplied by quantity, exact.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals is the computed subtotal/tax/grand triple. Values are stored at full
// precision; rounding to two digits happens only at the display boundary.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Grand    decimal.Decimal
}

// ZeroTotals returns an all-zero totals triple.
func ZeroTotals() Totals {
	return Totals{
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Grand:    decimal.Zero,
	}
}

// Cart is the ordered sequence of lines in the sale in progress. Insertion
// order is preserved for display. Totals are recomputed on every mutation.
type Cart struct {
	Lines  []CartLine
	Totals Totals
}

// NewCart returns an empty cart with zeroed totals.
func NewCart() Cart {
	return Cart{Totals: ZeroTotals()}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// AddItem adds one unit of the given item. An id already in the cart
// increments that line's quantity; a new id appends a line with quantity 1.
func (c *Cart) AddItem(id, name string, price decimal.Decimal, image string) {
	if i := c.indexOf(id); i >= 0 {
		c.Lines[i].Quantity++
	} else {
		c.Lines = append(c.Lines, CartLine{
			ID:       id,
			Name:     name,
			Price:    price,
			Image:    image,
			Quantity: 1,
		})
	}
	c.recalculate()
}

// RemoveLine removes the line with the given id. Removing an absent id is a
// no-op; it reports whether a line was removed.
func (c *Cart) RemoveLine(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	c.recalculate()
	return true
}

func (c *Cart) indexOf(id string) int {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) recalculate() {
	subtotal := decimal.Zero
	for i := range c.Lines {
		subtotal = subtotal.Add(c.Lines[i].LineTotal())
	}
	tax := subtotal.Mul(TaxRate)

	c.Totals.Subtotal = subtotal
	c.Totals.Tax = tax
	c.Totals.Grand = subtotal.Add(tax)
}

// CopyLines returns an independent copy of the cart lines for rendering.
func (c *Cart) CopyLines() []CartLine {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return lines
}
