// Package menu drives the interactive numbered menu over an inventory
// store. All console I/O flows through an injected reader and writer; the
// store and the persistence layer stay the only sources of truth for
// success or failure.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"stock-ledger/internal/common"
	"stock-ledger/internal/config"
	"stock-ledger/internal/csvfile"
	"stock-ledger/internal/inventory"
)

// Menu choices, in the order they are listed on screen.
const (
	choiceAdd = 1 + iota
	choiceUpdate
	choiceDelete
	choiceSearch
	choiceLowStock
	choiceSell
	choiceHistory
	choiceList
	choiceStatus
	choiceSaveExit
)

// Menu runs the interactive session.
type Menu struct {
	in    *bufio.Scanner
	out   io.Writer
	store *inventory.Store
	cfg   config.Config
}

// New returns a menu reading from in and writing to out.
func New(in io.Reader, out io.Writer, st *inventory.Store, cfg config.Config) *Menu {
	return &Menu{
		in:    bufio.NewScanner(in),
		out:   out,
		store: st,
		cfg:   cfg,
	}
}

// Run loops until the user picks Save & Exit, then persists the store.
// Reaching end of input exits without saving.
func (m *Menu) Run() error {
	for {
		m.printMenu()

		line, ok := m.readLine()
		if !ok {
			return nil
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || !common.IsInRange(choiceAdd, choice, choiceSaveExit) {
			continue
		}

		switch choice {
		case choiceAdd:
			m.addItem()
		case choiceUpdate:
			m.updateItem()
		case choiceDelete:
			m.deleteItem()
		case choiceSearch:
			m.searchItem()
		case choiceLowStock:
			m.lowStock()
		case choiceSell:
			m.sellItem()
		case choiceHistory:
			m.salesHistory()
		case choiceList:
			m.listItems()
		case choiceStatus:
			m.status()
		case choiceSaveExit:
			return m.save()
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprint(m.out, "\n===== INVENTORY MANAGER (Local Storage) =====\n"+
		"1. Add Item\n"+
		"2. Update Item\n"+
		"3. Delete Item\n"+
		"4. Search Item\n"+
		"5. Low Stock Alert\n"+
		"6. Sell Item\n"+
		"7. Sales History\n"+
		"8. List All Items\n"+
		"9. Check System Status\n"+
		"10. Save & Exit\n"+
		"Choice: ")
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}

	return m.in.Text(), true
}

// prompt asks for one line of input. ok is false when the user cancelled or
// input ended.
func (m *Menu) prompt(msg string) (string, bool) {
	fmt.Fprintf(m.out, "%s (or type 'cancel' to return): ", msg)

	line, ok := m.readLine()
	if !ok || isCancel(line) {
		return "", false
	}

	return line, true
}

func (m *Menu) promptInt(msg string) (int, bool) {
	line, ok := m.prompt(msg)
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}

	return n, true
}

func (m *Menu) promptFloat(msg string) (float64, bool) {
	line, ok := m.prompt(msg)
	if !ok {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

func isCancel(s string) bool {
	t := strings.ToLower(strings.TrimSpace(s))

	return t == "cancel" || t == "c"
}

func (m *Menu) cancelled() {
	fmt.Fprintln(m.out, "Cancelled or invalid input.")
}

func (m *Menu) addItem() {
	name, ok := m.prompt("Item name")
	if !ok || strings.TrimSpace(name) == "" {
		m.cancelled()

		return
	}

	size, ok := m.prompt("Size/Color")
	if !ok {
		m.cancelled()

		return
	}

	qty, ok := m.promptInt("Quantity")
	if !ok {
		m.cancelled()

		return
	}

	buy, ok := m.promptFloat("Purchase price")
	if !ok {
		m.cancelled()

		return
	}

	sell, ok := m.promptFloat("Selling price")
	if !ok {
		m.cancelled()

		return
	}

	id := m.store.Add(name, size, qty, buy, sell)
	fmt.Fprintf(m.out, "Item added successfully! Assigned ID: %d\n", id)
}

func (m *Menu) updateItem() {
	id, ok := m.promptInt("Item ID")
	if !ok {
		m.cancelled()

		return
	}

	qty, ok := m.promptInt("New quantity")
	if !ok {
		m.cancelled()

		return
	}

	buy, ok := m.promptFloat("New purchase price")
	if !ok {
		m.cancelled()

		return
	}

	sell, ok := m.promptFloat("New selling price")
	if !ok {
		m.cancelled()

		return
	}

	if err := m.store.Update(id, qty, buy, sell); err != nil {
		fmt.Fprintln(m.out, "Item not found.")

		return
	}

	fmt.Fprintln(m.out, "Item updated!")
}

func (m *Menu) deleteItem() {
	id, ok := m.promptInt("Item ID to DELETE")
	if !ok {
		m.cancelled()

		return
	}

	it, found := m.store.ItemByID(id)
	if !found {
		fmt.Fprintln(m.out, "Item not found.")

		return
	}

	fmt.Fprintf(m.out, "Deleting Item: %s (Qty: %d)\n", it.Name, it.Quantity)
	fmt.Fprint(m.out, "Are you sure? (y/n): ")

	confirm, ok := m.readLine()
	if !ok || strings.ToLower(strings.TrimSpace(confirm)) != "y" {
		fmt.Fprintln(m.out, "Deletion cancelled.")

		return
	}

	if err := m.store.Delete(id); err != nil {
		fmt.Fprintln(m.out, "Error deleting item.")

		return
	}

	fmt.Fprintln(m.out, "Item deleted successfully.")
}

func (m *Menu) searchItem() {
	key, ok := m.prompt("Search name")
	if !ok || strings.TrimSpace(key) == "" {
		m.cancelled()

		return
	}

	fmt.Fprintln(m.out, "\n--- SEARCH RESULTS ---")

	found := m.store.SearchByName(key)
	if common.IsEmpty(found) {
		fmt.Fprintln(m.out, "No matches found.")

		return
	}

	for _, it := range found {
		m.printItem(it)
	}
}

func (m *Menu) lowStock() {
	fmt.Fprintln(m.out, "\n--- LOW STOCK ITEMS ---")

	low := m.store.LowStock(m.cfg.LowStockThreshold)
	if common.IsEmpty(low) {
		fmt.Fprintln(m.out, "No low stock items.")

		return
	}

	for _, it := range low {
		fmt.Fprintf(m.out, "%s | Qty: %d\n", it.Name, it.Quantity)
	}
}

func (m *Menu) sellItem() {
	id, ok := m.promptInt("Item ID")
	if !ok {
		m.cancelled()

		return
	}

	qty, ok := m.promptInt("Quantity sold")
	if !ok {
		m.cancelled()

		return
	}

	sale, err := m.store.Sell(id, qty)

	switch {
	case err == nil:
		fmt.Fprintf(m.out, "Item sold! Profit: %g\n", sale.Profit)
	case errors.Is(err, inventory.ErrItemNotFound):
		fmt.Fprintln(m.out, "Item not found!")
	case errors.Is(err, inventory.ErrInsufficientStock):
		fmt.Fprintln(m.out, "Not enough stock!")
	case errors.Is(err, inventory.ErrInvalidQuantity):
		fmt.Fprintln(m.out, "Quantity must be positive!")
	default:
		fmt.Fprintf(m.out, "Sale failed: %v\n", err)
	}
}

func (m *Menu) salesHistory() {
	fmt.Fprintln(m.out, "\n--- SALES HISTORY ---")

	sales := m.store.Sales()
	if common.IsEmpty(sales) {
		fmt.Fprintln(m.out, "No sales recorded yet.")

		return
	}

	// Newest first.
	for i := len(sales) - 1; i >= 0; i-- {
		s := sales[i]
		fmt.Fprintf(m.out, "SaleID: %d | %s | Qty: %d | Profit: %g | Date: %s\n",
			s.ID, s.ItemName, s.QuantitySold, s.Profit, s.DateSold)
	}
}

func (m *Menu) listItems() {
	fmt.Fprintln(m.out, "\n--- ITEM LIST ---")

	items := m.store.Items()
	if common.IsEmpty(items) {
		fmt.Fprintln(m.out, "No items in inventory.")

		return
	}

	for _, it := range items {
		m.printItem(it)
	}
}

func (m *Menu) printItem(it inventory.Item) {
	fmt.Fprintf(m.out, "ID: %d | %s | %s | Qty: %d | Buy: %g | Sell: %g\n",
		it.ID, it.Name, it.SizeVariant, it.Quantity, it.PurchasePrice, it.SellingPrice)
}

func (m *Menu) status() {
	items, sales := m.store.Counts()

	fmt.Fprintln(m.out, "\nChecking storage status...")
	fmt.Fprintf(m.out, " [OK] Item storage active (%d items).\n", items)
	fmt.Fprintf(m.out, " [OK] Sales storage active (%d records).\n", sales)
	fmt.Fprintln(m.out, "Storage is HEALTHY (Local Mode).")
}

func (m *Menu) save() error {
	if err := csvfile.Save(m.store, m.cfg.ItemsFile, m.cfg.SalesFile); err != nil {
		fmt.Fprintf(m.out, " [Error] Could not save: %v\n", err)

		return err
	}

	fmt.Fprintf(m.out, " [Saved] Items to %s\n", m.cfg.ItemsFile)
	fmt.Fprintf(m.out, " [Saved] Sales to %s\n", m.cfg.SalesFile)

	return nil
}
