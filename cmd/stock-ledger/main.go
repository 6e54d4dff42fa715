// Package main provides the CLI entrypoint for stock-ledger.
//
// stock-ledger is a single-user, offline inventory and sales tracker:
//   - Loads items and sales from flat CSV files (seeding defaults when
//     neither exists)
//   - Serves an interactive numbered menu for add/update/delete/sell,
//     search, low-stock alerts, and sales history
//   - Saves everything back to the CSV files on exit
package main

import (
	"flag"
	"fmt"
	"os"

	"stock-ledger/internal/config"
	"stock-ledger/internal/csvfile"
	"stock-ledger/internal/inventory"
	"stock-ledger/internal/menu"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "stock-ledger.yaml", "path to the YAML config file")
	itemsPath := flag.String("items", "", "items file path (overrides config)")
	salesPath := flag.String("sales", "", "sales file path (overrides config)")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		return err
	}

	cfg, err = cfg.FromEnv()
	if err != nil {
		return err
	}

	if *itemsPath != "" {
		cfg.ItemsFile = *itemsPath
	}

	if *salesPath != "" {
		cfg.SalesFile = *salesPath
	}

	fmt.Println("Running in STANDALONE mode (In-Memory + CSV Persistence)")

	st := inventory.NewStore()
	diags := csvfile.Load(st, cfg.ItemsFile, cfg.SalesFile)

	for _, d := range diags.All() {
		fmt.Printf(" [%s] %s\n", d.Severity, d)
	}

	return menu.New(os.Stdin, os.Stdout, st, cfg).Run()
}
