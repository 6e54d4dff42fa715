package inventory

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
}

func newTestStore() *Store {
	st := NewStore()
	st.now = fixedClock

	return st
}

func TestAddAssignsIncreasingIDs(t *testing.T) {
	st := newTestStore()

	id1 := st.Add("Widget", "Small", 10, 5.0, 8.0)
	id2 := st.Add("Widget", "Small", 10, 5.0, 8.0) // duplicates allowed
	id3 := st.Add("Bolt", "Red", 3, 0.5, 1.0)

	assert.Equal(t, 1, id1)
	assert.Equal(t, 2, id2)
	assert.Equal(t, 3, id3)

	// IDs are never reused, even after deletion.
	require.NoError(t, st.Delete(id3))
	id4 := st.Add("Gadget", "Blue", 20, 10.0, 15.0)
	assert.Equal(t, 4, id4)
}

func TestAddSanitizesCommas(t *testing.T) {
	st := newTestStore()

	id := st.Add("Nuts, assorted", "5mm,brass", 7, 0.1, 0.2)

	it, ok := st.ItemByID(id)
	require.True(t, ok)
	assert.Equal(t, "Nuts  assorted", it.Name)
	assert.Equal(t, "5mm brass", it.SizeVariant)
}

func TestUpdate(t *testing.T) {
	st := newTestStore()
	id := st.Add("Widget", "Small", 10, 5.0, 8.0)

	require.NoError(t, st.Update(id, 25, 4.5, 9.0))

	it, ok := st.ItemByID(id)
	require.True(t, ok)
	assert.Equal(t, 25, it.Quantity)
	assert.Equal(t, 4.5, it.PurchasePrice)
	assert.Equal(t, 9.0, it.SellingPrice)

	// Name and size are not mutated by Update.
	assert.Equal(t, "Widget", it.Name)
	assert.Equal(t, "Small", it.SizeVariant)
}

func TestUpdateNotFoundLeavesStoreUntouched(t *testing.T) {
	st := newTestStore()
	st.Add("Widget", "Small", 10, 5.0, 8.0)

	before := st.Items()
	err := st.Update(99, 1, 1.0, 1.0)

	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, before, st.Items())
	assert.Empty(t, st.Sales())
}

func TestDelete(t *testing.T) {
	st := newTestStore()
	id1 := st.Add("Widget", "Small", 10, 5.0, 8.0)
	id2 := st.Add("Bolt", "Red", 3, 0.5, 1.0)

	require.NoError(t, st.Delete(id1))

	_, ok := st.ItemByID(id1)
	assert.False(t, ok)

	_, ok = st.ItemByID(id2)
	assert.True(t, ok)

	assert.ErrorIs(t, st.Delete(id1), ErrItemNotFound)
	assert.ErrorIs(t, st.Delete(99), ErrItemNotFound)
}

func TestDeleteKeepsSales(t *testing.T) {
	st := newTestStore()
	id := st.Add("Widget", "Small", 10, 5.0, 8.0)

	_, err := st.Sell(id, 2)
	require.NoError(t, err)
	require.NoError(t, st.Delete(id))

	// The sale outlives the item; the name snapshot keeps it readable.
	sales := st.Sales()
	require.Len(t, sales, 1)
	assert.Equal(t, id, sales[0].ItemID)
	assert.Equal(t, "Widget", sales[0].ItemName)
}

func TestSell(t *testing.T) {
	st := newTestStore()
	id := st.Add("Widget", "Small", 10, 5.0, 8.0)

	sale, err := st.Sell(id, 4)
	require.NoError(t, err)

	assert.Equal(t, 1, sale.ID)
	assert.Equal(t, id, sale.ItemID)
	assert.Equal(t, "Widget", sale.ItemName)
	assert.Equal(t, 4, sale.QuantitySold)
	assert.Equal(t, 12.0, sale.Profit)
	assert.Equal(t, "2024-03-15 10:30:00", sale.DateSold)

	it, ok := st.ItemByID(id)
	require.True(t, ok)
	assert.Equal(t, 6, it.Quantity)

	require.Len(t, st.Sales(), 1)
}

func TestSellErrors(t *testing.T) {
	tests := []struct {
		name string
		id   int
		qty  int
		want error
	}{
		{"unknown item", 99, 1, ErrItemNotFound},
		{"zero quantity", 1, 0, ErrInvalidQuantity},
		{"negative quantity", 1, -3, ErrInvalidQuantity},
		{"over stock", 1, 11, ErrInsufficientStock},
		{"unknown beats quantity check", 99, 0, ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore()
			st.Add("Widget", "Small", 10, 5.0, 8.0)

			itemsBefore := st.Items()
			_, err := st.Sell(tt.id, tt.qty)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, itemsBefore, st.Items())
			assert.Empty(t, st.Sales())
		})
	}
}

func TestSellExactStock(t *testing.T) {
	st := newTestStore()
	id := st.Add("Bolt", "Red", 3, 0.5, 1.0)

	sale, err := st.Sell(id, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.5, sale.Profit)

	it, ok := st.ItemByID(id)
	require.True(t, ok)
	assert.Equal(t, 0, it.Quantity)
}

func TestSellLeavesOtherItemsUntouched(t *testing.T) {
	st := newTestStore()
	id1 := st.Add("Widget", "Small", 10, 5.0, 8.0)
	id2 := st.Add("Bolt", "Red", 3, 0.5, 1.0)

	_, err := st.Sell(id1, 4)
	require.NoError(t, err)

	it, ok := st.ItemByID(id2)
	require.True(t, ok)
	assert.Equal(t, 3, it.Quantity)
}

func TestSearchByName(t *testing.T) {
	st := newTestStore()
	st.Add("Widget", "Small", 10, 5.0, 8.0)
	st.Add("Mega Widget", "Large", 2, 8.0, 14.0)
	st.Add("Bolt", "Red", 3, 0.5, 1.0)

	found := st.SearchByName("WIDGET")
	require.Len(t, found, 2)
	assert.Equal(t, "Widget", found[0].Name)
	assert.Equal(t, "Mega Widget", found[1].Name)

	assert.Empty(t, st.SearchByName("gasket"))
}

func TestLowStock(t *testing.T) {
	st := newTestStore()
	st.Add("Widget", "Small", 10, 5.0, 8.0)
	st.Add("Bolt", "Red", 3, 0.5, 1.0)
	st.Add("Gadget", "Blue", 5, 10.0, 15.0)

	low := st.LowStock(5)
	require.Len(t, low, 2)
	assert.Equal(t, "Bolt", low[0].Name)
	assert.Equal(t, "Gadget", low[1].Name) // threshold is inclusive
}

func TestRestoreAdvancesCounters(t *testing.T) {
	st := newTestStore()
	st.Restore(
		[]Item{
			{ID: 2, Name: "Widget", SizeVariant: "Small", Quantity: 10, PurchasePrice: 5, SellingPrice: 8},
			{ID: 7, Name: "Bolt", SizeVariant: "Red", Quantity: 3, PurchasePrice: 0.5, SellingPrice: 1},
		},
		[]Sale{
			{ID: 4, ItemID: 2, ItemName: "Widget", QuantitySold: 1, Profit: 3, DateSold: "2024-01-01 09:00:00"},
		},
	)

	assert.Equal(t, 8, st.Add("Gadget", "Blue", 20, 10.0, 15.0))

	sale, err := st.Sell(7, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, sale.ID)
}

func TestRestoreEmptyResetsCounters(t *testing.T) {
	st := newTestStore()
	st.Add("Widget", "Small", 10, 5.0, 8.0)

	st.Restore(nil, nil)

	items, sales := st.Counts()
	assert.Zero(t, items)
	assert.Zero(t, sales)
	assert.Equal(t, 1, st.Add("Bolt", "Red", 3, 0.5, 1.0))
}

func TestSeed(t *testing.T) {
	st := newTestStore()
	st.Seed()

	items := st.Items()
	require.Len(t, items, 3)

	assert.Equal(t, Item{ID: 1, Name: "Widget", SizeVariant: "Small", Quantity: 10, PurchasePrice: 5.0, SellingPrice: 8.0}, items[0])
	assert.Equal(t, Item{ID: 2, Name: "Bolt", SizeVariant: "Red", Quantity: 3, PurchasePrice: 0.5, SellingPrice: 1.0}, items[1])
	assert.Equal(t, Item{ID: 3, Name: "Gadget", SizeVariant: "Blue", Quantity: 20, PurchasePrice: 10.0, SellingPrice: 15.0}, items[2])

	assert.Empty(t, st.Sales())

	t.Run("display", func(t *testing.T) {
		if testing.Verbose() {
			spew.Dump(items)
		}
	})
}
