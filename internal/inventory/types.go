package inventory

// Item represents a stocked product with its current quantity and prices.
type Item struct {
	// ID is a unique positive integer assigned by the store. IDs are never
	// reused, even after deletion.
	ID int

	// Name is the display name. Commas are replaced before storage because
	// the persisted row format is comma-delimited.
	Name string

	// SizeVariant is a free-text size or color descriptor, with the same
	// comma constraint as Name.
	SizeVariant string

	// Quantity is the current stock count.
	Quantity int

	PurchasePrice float64
	SellingPrice  float64
}

// Sale is an immutable record of a completed sale. It snapshots the item
// name at sale time so history stays readable after the item is renamed or
// deleted.
type Sale struct {
	ID           int
	ItemID       int
	ItemName     string
	QuantitySold int

	// Profit is (selling price - purchase price) * quantity, computed at
	// sale time and stored rather than recomputed later.
	Profit float64

	// DateSold is the sale timestamp in "2006-01-02 15:04:05" form.
	DateSold string
}
