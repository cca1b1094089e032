package cartControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mookistore/vapeshop-api/models"
)

func sampleProduct(id string, price float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Strawberry Punch " + id,
		Price:    price,
		ImageURL: "https://img.example/" + id + ".jpg",
	}
}

func TestAdd_MergesSameProduct(t *testing.T) {
	ledger := NewLedger(nil)
	p1 := sampleProduct("p1", 10.00)

	ledger.Add(p1, 2)
	ledger.Add(p1, 1)
	ledger.Add(p1, 3)

	items := ledger.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 6, items[0].Quantity)
}

func TestAdd_SnapshotsPriceAtFirstAdd(t *testing.T) {
	ledger := NewLedger(nil)
	p1 := sampleProduct("p1", 10.00)
	ledger.Add(p1, 1)

	// A later price change on the catalog side must not retroactively reprice
	// the line item.
	p1.Price = 99.99
	ledger.Add(p1, 1)

	items := ledger.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 10.00, items[0].Price)
	assert.Equal(t, 20.00, ledger.Total())
}

func TestAdd_RejectsNonPositiveQuantity(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.Add(sampleProduct("p1", 5.00), 0)
	ledger.Add(sampleProduct("p1", 5.00), -3)

	assert.Empty(t, ledger.Items())
	assert.Equal(t, 0, ledger.Count())
}

func TestSetQuantity_ZeroRemoves(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.Add(sampleProduct("p1", 10.00), 2)

	ledger.SetQuantity("p1", 0)

	assert.Empty(t, ledger.Items())
	assert.Equal(t, 0.00, ledger.Total())
}

func TestSetQuantity_NegativeRemoves(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.Add(sampleProduct("p1", 10.00), 2)

	ledger.SetQuantity("p1", -1)

	assert.Empty(t, ledger.Items())
}

func TestSetQuantity_OverwritesExactly(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.Add(sampleProduct("p1", 10.00), 2)

	ledger.SetQuantity("p1", 7)

	items := ledger.Items()
	assert.Equal(t, 7, items[0].Quantity)
	assert.Equal(t, 70.00, ledger.Total())
}

func TestRemove_UnknownProductIsNoop(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.Add(sampleProduct("p1", 10.00), 1)

	ledger.Remove("does-not-exist")

	assert.Len(t, ledger.Items(), 1)
}

func TestTotalAndCount_RecomputedAfterEveryMutation(t *testing.T) {
	ledger := NewLedger(nil)

	ledger.Add(sampleProduct("p1", 10.00), 2)
	assert.Equal(t, 20.00, ledger.Total())
	assert.Equal(t, 2, ledger.Count())

	ledger.Add(sampleProduct("p1", 10.00), 1)
	assert.Len(t, ledger.Items(), 1)
	assert.Equal(t, 30.00, ledger.Total())
	assert.Equal(t, 3, ledger.Count())

	ledger.SetQuantity("p1", 0)
	assert.Empty(t, ledger.Items())
	assert.Equal(t, 0.00, ledger.Total())
	assert.Equal(t, 0, ledger.Count())
}

func TestTotal_DecimalExactness(t *testing.T) {
	ledger := NewLedger(nil)
	// 0.1 + 0.2 style floats drift under naive float64 summation.
	ledger.Add(sampleProduct("p1", 0.10), 1)
	ledger.Add(sampleProduct("p2", 0.20), 1)

	assert.Equal(t, 0.30, ledger.Total())
}

func TestItems_ReturnsCopy(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.Add(sampleProduct("p1", 10.00), 2)

	snapshot := ledger.Items()
	snapshot[0].Quantity = 99

	assert.Equal(t, 2, ledger.Items()[0].Quantity)
}

func TestNewLedger_CollapsesDuplicateAndInvalidEntries(t *testing.T) {
	// A stale or tampered payload may hold duplicates or bad quantities; the
	// ledger invariants must be restored on load.
	ledger := NewLedger([]models.CartLineItem{
		{ProductID: "p1", ProductName: "A", Price: 5.00, Quantity: 2},
		{ProductID: "p1", ProductName: "A", Price: 5.00, Quantity: 3},
		{ProductID: "p2", ProductName: "B", Price: 1.00, Quantity: 0},
	})

	items := ledger.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestClear(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.Add(sampleProduct("p1", 10.00), 2)
	ledger.Add(sampleProduct("p2", 4.50), 1)

	ledger.Clear()

	assert.Empty(t, ledger.Items())
	assert.Equal(t, 0, ledger.Count())
}

func TestLedger_PreservesInsertionOrder(t *testing.T) {
	ledger := NewLedger(nil)
	ledger.Add(sampleProduct("p2", 4.50), 1)
	ledger.Add(sampleProduct("p1", 10.00), 1)
	ledger.Add(sampleProduct("p3", 7.25), 1)
	ledger.Add(sampleProduct("p1", 10.00), 1)

	items := ledger.Items()
	assert.Equal(t, []string{"p2", "p1", "p3"}, []string{items[0].ProductID, items[1].ProductID, items[2].ProductID})
}
