package domain

import "github.com/shopspring/decimal"

// PaymentStatus represents the status of a recorded payment.
type PaymentStatus string

// PaymentStatusPaid is the only status a recorded payment can have.
const PaymentStatusPaid PaymentStatus = "Paid"

// Payment represents a payment that settled an order's total in full.
type Payment struct {
	OrderID int
	Amount  decimal.Decimal
	Status  PaymentStatus
}
