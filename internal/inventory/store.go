// Package inventory holds the in-memory item and sale collections and the
// operations that mutate them. Persistence lives in internal/csvfile; this
// package never touches the filesystem.
package inventory

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the timestamp layout used for Sale.DateSold.
const DateLayout = "2006-01-02 15:04:05"

// ErrItemNotFound indicates the referenced item ID is absent from the store.
var ErrItemNotFound = errors.New("item not found")

// ErrInsufficientStock indicates a sale requested more units than held.
var ErrInsufficientStock = errors.New("not enough stock")

// ErrInvalidQuantity indicates a sale requested a zero or negative quantity.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// Store owns the item and sale collections and both ID counters.
// All operations are synchronous; the store is not safe for concurrent use.
type Store struct {
	items []Item
	sales []Sale

	nextItemID int
	nextSaleID int

	now func() time.Time
}

// NewStore returns an empty store with both ID counters at 1.
func NewStore() *Store {
	return &Store{
		nextItemID: 1,
		nextSaleID: 1,
		now:        time.Now,
	}
}

// sanitize makes a value safe for the comma-delimited row format.
func sanitize(s string) string {
	return strings.ReplaceAll(s, ",", " ")
}

// Add appends a new item with the given fields and returns its ID.
// Commas in name and size are replaced with spaces before storage.
// Add never fails; duplicate names are allowed as distinct records.
func (st *Store) Add(name, size string, qty int, buy, sell float64) int {
	id := st.nextItemID
	st.nextItemID++

	st.items = append(st.items, Item{
		ID:            id,
		Name:          sanitize(name),
		SizeVariant:   sanitize(size),
		Quantity:      qty,
		PurchasePrice: buy,
		SellingPrice:  sell,
	})

	return id
}

// Update overwrites the quantity and both prices of the item with the given
// ID. Name and size are not touched. Returns ErrItemNotFound if no item has
// that ID; the store is unchanged in that case.
func (st *Store) Update(id, qty int, buy, sell float64) error {
	i := st.indexOf(id)
	if i < 0 {
		return ErrItemNotFound
	}

	st.items[i].Quantity = qty
	st.items[i].PurchasePrice = buy
	st.items[i].SellingPrice = sell

	return nil
}

// Delete removes the item with the given ID from the collection. Sales that
// reference the item are left untouched; their name snapshot keeps history
// readable. Returns ErrItemNotFound if no item has that ID.
func (st *Store) Delete(id int) error {
	i := st.indexOf(id)
	if i < 0 {
		return ErrItemNotFound
	}

	st.items = append(st.items[:i], st.items[i+1:]...)

	return nil
}

// Sell decrements the item's stock by qty and records an immutable sale with
// the profit (selling - purchase) * qty and the current timestamp.
// It returns the recorded sale, or an error leaving the store unchanged:
// ErrItemNotFound, ErrInvalidQuantity for qty <= 0, or ErrInsufficientStock
// when qty exceeds the current stock.
func (st *Store) Sell(id, qty int) (Sale, error) {
	i := st.indexOf(id)
	if i < 0 {
		return Sale{}, ErrItemNotFound
	}

	if qty <= 0 {
		return Sale{}, ErrInvalidQuantity
	}

	if qty > st.items[i].Quantity {
		return Sale{}, ErrInsufficientStock
	}

	item := &st.items[i]
	item.Quantity -= qty

	sale := Sale{
		ID:           st.nextSaleID,
		ItemID:       item.ID,
		ItemName:     item.Name,
		QuantitySold: qty,
		Profit:       (item.SellingPrice - item.PurchasePrice) * float64(qty),
		DateSold:     st.now().Format(DateLayout),
	}
	st.nextSaleID++
	st.sales = append(st.sales, sale)

	return sale, nil
}

// ItemByID returns the item with the given ID, or false if absent.
func (st *Store) ItemByID(id int) (Item, bool) {
	i := st.indexOf(id)
	if i < 0 {
		return Item{}, false
	}

	return st.items[i], true
}

// SearchByName returns all items whose name contains key,
// case-insensitively.
func (st *Store) SearchByName(key string) []Item {
	key = strings.ToLower(key)

	var out []Item
	for _, it := range st.items {
		if strings.Contains(strings.ToLower(it.Name), key) {
			out = append(out, it)
		}
	}

	return out
}

// LowStock returns all items with quantity at or below the threshold.
func (st *Store) LowStock(threshold int) []Item {
	var out []Item
	for _, it := range st.items {
		if it.Quantity <= threshold {
			out = append(out, it)
		}
	}

	return out
}

// Items returns a copy of the item collection in insertion order.
func (st *Store) Items() []Item {
	out := make([]Item, len(st.items))
	copy(out, st.items)

	return out
}

// Sales returns a copy of the sale collection in recording order.
func (st *Store) Sales() []Sale {
	out := make([]Sale, len(st.sales))
	copy(out, st.sales)

	return out
}

// Counts returns the number of items and sales currently held.
func (st *Store) Counts() (items, sales int) {
	return len(st.items), len(st.sales)
}

// Restore replaces both collections with the given records and advances each
// ID counter to one past the maximum ID present (1 when empty). It is used
// by the loader; callers own the slices afterwards.
func (st *Store) Restore(items []Item, sales []Sale) {
	st.items = items
	st.sales = sales

	st.nextItemID = 1
	for _, it := range items {
		if it.ID >= st.nextItemID {
			st.nextItemID = it.ID + 1
		}
	}

	st.nextSaleID = 1
	for _, s := range sales {
		if s.ID >= st.nextSaleID {
			st.nextSaleID = s.ID + 1
		}
	}
}

// Seed installs the default item set through normal ID allocation. It is
// called by the loader when no persisted data exists.
func (st *Store) Seed() {
	st.Add("Widget", "Small", 10, 5.0, 8.0)
	st.Add("Bolt", "Red", 3, 0.5, 1.0)
	st.Add("Gadget", "Blue", 20, 10.0, 15.0)
}

func (st *Store) indexOf(id int) int {
	for i := range st.items {
		if st.items[i].ID == id {
			return i
		}
	}

	return -1
}
