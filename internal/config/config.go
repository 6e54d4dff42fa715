// Package config resolves runtime settings for the ledger: where the two
// data files live and the low-stock threshold. Resolution order is
// defaults, then an optional YAML file, then environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names recognized by FromEnv.
const (
	EnvItemsFile = "STOCK_LEDGER_ITEMS_FILE"
	EnvSalesFile = "STOCK_LEDGER_SALES_FILE"
	EnvLowStock  = "STOCK_LEDGER_LOW_STOCK"
)

// Config holds all runtime settings.
type Config struct {
	// ItemsFile is the path of the persisted items file.
	ItemsFile string `yaml:"items_file,omitempty"`

	// SalesFile is the path of the persisted sales file.
	SalesFile string `yaml:"sales_file,omitempty"`

	// LowStockThreshold marks items with quantity at or below it as low
	// stock.
	LowStockThreshold int `yaml:"low_stock_threshold,omitempty"`
}

// Default returns the built-in settings: data files in the working
// directory and a low-stock threshold of 5.
func Default() Config {
	return Config{
		ItemsFile:         "items.csv",
		SalesFile:         "sales.csv",
		LowStockThreshold: 5,
	}
}

// LoadFile loads and parses a YAML config file from the given path,
// layering it over the defaults. A missing file yields the defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}

	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

// Parse parses YAML data into a Config layered over the defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyDefaults fills in default values for unset fields.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.ItemsFile == "" {
		cfg.ItemsFile = def.ItemsFile
	}

	if cfg.SalesFile == "" {
		cfg.SalesFile = def.SalesFile
	}

	if cfg.LowStockThreshold == 0 {
		cfg.LowStockThreshold = def.LowStockThreshold
	}
}

// FromEnv overlays environment variables onto the config. A .env file in
// the working directory is honored when present.
func (c Config) FromEnv() (Config, error) {
	// Missing .env is the normal case for an installed binary.
	_ = godotenv.Load()

	if v := os.Getenv(EnvItemsFile); v != "" {
		c.ItemsFile = v
	}

	if v := os.Getenv(EnvSalesFile); v != "" {
		c.SalesFile = v
	}

	if v := os.Getenv(EnvLowStock); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q is not an integer: %w", EnvLowStock, v, err)
		}

		c.LowStockThreshold = n
	}

	return c, c.validate()
}

func (c Config) validate() error {
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("low stock threshold must not be negative, got %d", c.LowStockThreshold)
	}

	return nil
}
