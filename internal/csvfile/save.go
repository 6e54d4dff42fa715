package csvfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stock-ledger/internal/inventory"
)

// File permission constants.
const filePerm = 0o644

// Save writes the full item and sale collections to their files, replacing
// any previous contents. Each file is written atomically: the data goes to a
// temporary file in the same directory which is then renamed over the
// target, so a failure mid-write leaves the previous file intact.
func Save(st *inventory.Store, itemsPath, salesPath string) error {
	var rows []string
	for _, it := range st.Items() {
		rows = append(rows, encodeItem(it))
	}

	if err := writeAtomic(itemsPath, rows); err != nil {
		return fmt.Errorf("saving items: %w", err)
	}

	rows = rows[:0]
	for _, s := range st.Sales() {
		rows = append(rows, encodeSale(s))
	}

	if err := writeAtomic(salesPath, rows); err != nil {
		return fmt.Errorf("saving sales: %w", err)
	}

	return nil
}

// writeAtomic writes rows to path via a sibling temp file and rename.
func writeAtomic(path string, rows []string) error {
	data := ""
	if len(rows) > 0 {
		data = strings.Join(rows, "\n") + "\n"
	}

	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.WriteString(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return fmt.Errorf("writing %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("closing %s: %w", tmpName, err)
	}

	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}
