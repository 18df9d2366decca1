package domain

import "github.com/shopspring/decimal"

// Order represents a request to buy a quantity of a single product.
type Order struct {
	ID        int
	ProductID int
	Quantity  decimal.Decimal
	Total     decimal.Decimal // Price * Quantity at creation time, never recomputed
}
