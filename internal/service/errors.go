package service

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductNotFound is returned when an order references an unknown product.
	ErrProductNotFound = errors.New("product not found")

	// ErrOrderNotFound is returned when a payment references an unknown order.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInsufficientAmount is returned when a payment is below the order total.
	ErrInsufficientAmount = errors.New("insufficient payment amount")

	// ErrAmountExceedsTotal is matched by AmountExceedsTotalError via errors.Is.
	ErrAmountExceedsTotal = errors.New("payment amount exceeds order total")
)

// AmountExceedsTotalError is returned when a payment is above the order total.
// Required holds the exact amount the caller has to pay.
type AmountExceedsTotalError struct {
	Required decimal.Decimal
}

func (e *AmountExceedsTotalError) Error() string {
	return ErrAmountExceedsTotal.Error() + ", please pay " + e.Required.String()
}

// Is reports whether target is ErrAmountExceedsTotal.
func (e *AmountExceedsTotalError) Is(target error) bool {
	return target == ErrAmountExceedsTotal
}
