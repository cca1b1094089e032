package cartControllers

import (
	"github.com/shopspring/decimal"

	"github.com/mookistore/vapeshop-api/models"
)

// Ledger holds one session's cart as an ordered sequence of line items, at
// most one per product. Totals and counts are always recomputed from the
// items, never stored.
type Ledger struct {
	items []models.CartLineItem
}

func NewLedger(items []models.CartLineItem) *Ledger {
	l := &Ledger{}
	// Re-applying through Add collapses any duplicate or non-positive entries
	// a stale payload might carry.
	for _, it := range items {
		l.Add(models.Product{
			ID:       it.ProductID,
			Name:     it.ProductName,
			Price:    it.Price,
			ImageURL: it.ImageURL,
		}, it.Quantity)
	}
	return l
}

// Add merges quantity into an existing line item for the product, or appends a
// new one with name, price and image snapshotted from the product as supplied.
// Non-positive quantities are ignored. No stock check happens here; stock is
// authoritative only at order creation.
func (l *Ledger) Add(product models.Product, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range l.items {
		if l.items[i].ProductID == product.ID {
			l.items[i].Quantity += quantity
			return
		}
	}
	l.items = append(l.items, models.CartLineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    quantity,
		ImageURL:    product.ImageURL,
	})
}

// SetQuantity overwrites a line item's quantity exactly. A quantity of zero or
// lower removes the item; a zero-quantity entry must never exist.
func (l *Ledger) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		l.Remove(productID)
		return
	}
	for i := range l.items {
		if l.items[i].ProductID == productID {
			l.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line item for productID. Removing an absent product is a
// no-op.
func (l *Ledger) Remove(productID string) {
	for i := range l.items {
		if l.items[i].ProductID == productID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

func (l *Ledger) Clear() {
	l.items = nil
}

// Items returns a copy of the line items so callers cannot mutate the ledger
// behind its back.
func (l *Ledger) Items() []models.CartLineItem {
	out := make([]models.CartLineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Total is the sum of price*quantity over all line items, computed with
// decimal arithmetic to keep derived money values exact.
func (l *Ledger) Total() float64 {
	return LineItemsTotal(l.items)
}

// Count is the sum of quantities over all line items.
func (l *Ledger) Count() int {
	n := 0
	for _, it := range l.items {
		n += it.Quantity
	}
	return n
}

// LineItemsTotal folds price*quantity over items.
func LineItemsTotal(items []models.CartLineItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	f, _ := sum.Float64()
	return f
}
