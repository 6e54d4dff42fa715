package csvfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"stock-ledger/internal/common"
	"stock-ledger/internal/diagnostic"
	"stock-ledger/internal/inventory"
)

// Diagnostic codes emitted by Load.
const (
	CodeFileUnreadable = "FILE_UNREADABLE"
	CodeRowSkipped     = "ROW_SKIPPED"
	CodeLoaded         = "LOADED"
	CodeSeeded         = "SEEDED_DEFAULTS"
)

// Load replaces the store's contents with the records persisted at the two
// paths and advances both ID counters past the maximum IDs seen.
//
// A missing file is not an error; an unreadable one is reported as an error
// diagnostic and skipped. Blank lines are ignored. Malformed rows are
// skipped with one warning diagnostic each, never aborting the rest of the
// file. If both collections come back empty, the store is seeded with the
// default items and an info diagnostic says so.
func Load(st *inventory.Store, itemsPath, salesPath string) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	items := loadRows(itemsPath, diags, decodeItem)
	sales := loadRows(salesPath, diags, decodeSale)

	st.Restore(items, sales)

	if common.IsEmpty(items) && common.IsEmpty(sales) {
		st.Seed()
		diags.AddInfo(CodeSeeded, "no previous data found, seeded default items", "", 0)

		return diags
	}

	diags.AddInfo(CodeLoaded, fmt.Sprintf("loaded %d items", len(items)), itemsPath, 0)
	diags.AddInfo(CodeLoaded, fmt.Sprintf("loaded %d sales records", len(sales)), salesPath, 0)

	return diags
}

// loadRows reads one file line by line through decode, collecting
// diagnostics for anything it rejects.
func loadRows[T any](path string, diags *diagnostic.Diagnostics, decode func(string) (T, error)) []T {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			diags.AddError(CodeFileUnreadable, err.Error(), path, 0)
		}

		return nil
	}
	defer f.Close()

	var out []T

	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		rec, err := decode(text)
		if err != nil {
			diags.AddWarning(CodeRowSkipped, err.Error(), path, line)

			continue
		}

		out = append(out, rec)
	}

	if err := sc.Err(); err != nil {
		diags.AddError(CodeFileUnreadable, err.Error(), path, 0)
	}

	return out
}
