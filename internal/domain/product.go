package domain

import "github.com/shopspring/decimal"

// Product represents a catalog item. The catalog is seeded at startup and
// never changes afterwards.
type Product struct {
	ID    int
	Name  string
	Price decimal.Decimal
}
