package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CartLine is one line of an in-progress sale. ProductID is nil for ad-hoc
// lines (items sold without a catalog entry); those never touch stock.
type CartLine struct {
	ProductID   *uint
	Barcode     string
	Description string
	Qty         int
	UnitPrice   decimal.Decimal
	TaxPercent  decimal.Decimal
	// Available is the stock known when the line was added. Zero for ad-hoc
	// lines. The commit-time guard is authoritative; this only gives the
	// cart an early rejection.
	Available int
}

// LineTotal returns qty * unit price before tax.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// LineTax returns the tax amount for the line.
func (l CartLine) LineTax() decimal.Decimal {
	return l.LineTotal().Mul(l.TaxPercent).Div(decimal.NewFromInt(100))
}

// Cart accumulates lines for a checkout. It is a plain value type; callers
// own concurrency. Lines keep insertion order.
type Cart struct {
	lines []CartLine
}

// matches reports whether an incoming line refers to the same article as an
// existing one: same product id, else same non-empty barcode, else same
// name ignoring case (ad-hoc lines only).
func (c *Cart) matches(a, b CartLine) bool {
	if a.ProductID != nil && b.ProductID != nil {
		return *a.ProductID == *b.ProductID
	}
	if a.ProductID != nil || b.ProductID != nil {
		return false
	}
	if a.Barcode != "" && b.Barcode != "" {
		return a.Barcode == b.Barcode
	}
	return strings.EqualFold(a.Description, b.Description)
}

// Add inserts a line, merging quantities into an existing line for the same
// article. Returns ErrInsufficientStock when the merged quantity would exceed
// the line's known available stock.
func (c *Cart) Add(line CartLine) error {
	if line.Qty <= 0 {
		return ErrInsufficientStock
	}
	for i := range c.lines {
		if c.matches(c.lines[i], line) {
			merged := c.lines[i].Qty + line.Qty
			if c.lines[i].ProductID != nil && merged > c.lines[i].Available {
				return ErrInsufficientStock
			}
			c.lines[i].Qty = merged
			return nil
		}
	}
	if line.ProductID != nil && line.Qty > line.Available {
		return ErrInsufficientStock
	}
	c.lines = append(c.lines, line)
	return nil
}

// SetQty replaces the quantity of the line at idx. Qty zero removes the line.
func (c *Cart) SetQty(idx, qty int) error {
	if idx < 0 || idx >= len(c.lines) {
		return ErrSaleNotFound
	}
	if qty == 0 {
		c.Remove(idx)
		return nil
	}
	if qty < 0 {
		return ErrInsufficientStock
	}
	if c.lines[idx].ProductID != nil && qty > c.lines[idx].Available {
		return ErrInsufficientStock
	}
	c.lines[idx].Qty = qty
	return nil
}

// Remove drops the line at idx. Out-of-range indexes are ignored.
func (c *Cart) Remove(idx int) {
	if idx < 0 || idx >= len(c.lines) {
		return
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
}

// Clear empties the cart.
func (c *Cart) Clear() { c.lines = nil }

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines.
func (c *Cart) Len() int { return len(c.lines) }

// Subtotal is the sum of line totals before tax.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

// TaxTotal is the sum of per-line tax amounts.
func (c *Cart) TaxTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.LineTax())
	}
	return sum
}

// Total is subtotal plus tax, rounded to two decimal places.
func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Add(c.TaxTotal()).Round(2)
}
