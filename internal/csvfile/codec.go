// Package csvfile persists the inventory store to flat comma-delimited text
// files, one record per line, no header row. Field order is fixed:
//
//	items: id,name,size_or_variant,quantity,purchase_price,selling_price
//	sales: id,item_id,item_name,quantity_sold,profit,date_sold
//
// The writer performs no escaping; name and size fields are stripped of
// commas before they ever reach the store.
package csvfile

import (
	"fmt"
	"strconv"
	"strings"

	"stock-ledger/internal/inventory"
)

//go:generate go tool stringer -type=RowStatus -output=row_status_string.go

// RowStatus classifies the disposition of one persisted row.
type RowStatus int

const (
	// RowAccepted means the row parsed cleanly.
	RowAccepted RowStatus = iota
	// RowShort means the row had fewer than the required six fields.
	RowShort
	// RowBadNumber means a numeric field could not be parsed.
	RowBadNumber
)

// fieldsPerRow is the minimum field count for both record shapes. Extra
// trailing fields are ignored, not an error.
const fieldsPerRow = 6

// RowError describes why a row was rejected.
type RowError struct {
	Status RowStatus
	Field  string
	Err    error
}

func (e *RowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s field %s: %v", e.Status, e.Field, e.Err)
	}

	return fmt.Sprintf("%s: need at least %d fields", e.Status, fieldsPerRow)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// formatFloat renders a float in its shortest round-trippable decimal form,
// so 12.0 persists as "12" and survives a reload exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// encodeItem renders one item as a comma-joined row.
func encodeItem(it inventory.Item) string {
	return strings.Join([]string{
		strconv.Itoa(it.ID),
		it.Name,
		it.SizeVariant,
		strconv.Itoa(it.Quantity),
		formatFloat(it.PurchasePrice),
		formatFloat(it.SellingPrice),
	}, ",")
}

// encodeSale renders one sale as a comma-joined row.
func encodeSale(s inventory.Sale) string {
	return strings.Join([]string{
		strconv.Itoa(s.ID),
		strconv.Itoa(s.ItemID),
		s.ItemName,
		strconv.Itoa(s.QuantitySold),
		formatFloat(s.Profit),
		s.DateSold,
	}, ",")
}

// decodeItem parses one item row. Positional fields beyond the sixth are
// ignored. On failure it returns a *RowError naming the offending field.
func decodeItem(line string) (inventory.Item, error) {
	fields := strings.Split(line, ",")
	if len(fields) < fieldsPerRow {
		return inventory.Item{}, &RowError{Status: RowShort}
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return inventory.Item{}, &RowError{Status: RowBadNumber, Field: "id", Err: err}
	}

	qty, err := strconv.Atoi(fields[3])
	if err != nil {
		return inventory.Item{}, &RowError{Status: RowBadNumber, Field: "quantity", Err: err}
	}

	buy, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return inventory.Item{}, &RowError{Status: RowBadNumber, Field: "purchase_price", Err: err}
	}

	sell, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return inventory.Item{}, &RowError{Status: RowBadNumber, Field: "selling_price", Err: err}
	}

	return inventory.Item{
		ID:            id,
		Name:          fields[1],
		SizeVariant:   fields[2],
		Quantity:      qty,
		PurchasePrice: buy,
		SellingPrice:  sell,
	}, nil
}

// decodeSale parses one sale row, mirroring decodeItem.
func decodeSale(line string) (inventory.Sale, error) {
	fields := strings.Split(line, ",")
	if len(fields) < fieldsPerRow {
		return inventory.Sale{}, &RowError{Status: RowShort}
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return inventory.Sale{}, &RowError{Status: RowBadNumber, Field: "id", Err: err}
	}

	itemID, err := strconv.Atoi(fields[1])
	if err != nil {
		return inventory.Sale{}, &RowError{Status: RowBadNumber, Field: "item_id", Err: err}
	}

	qty, err := strconv.Atoi(fields[3])
	if err != nil {
		return inventory.Sale{}, &RowError{Status: RowBadNumber, Field: "quantity_sold", Err: err}
	}

	profit, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return inventory.Sale{}, &RowError{Status: RowBadNumber, Field: "profit", Err: err}
	}

	return inventory.Sale{
		ID:           id,
		ItemID:       itemID,
		ItemName:     fields[2],
		QuantitySold: qty,
		Profit:       profit,
		DateSold:     fields[5],
	}, nil
}
