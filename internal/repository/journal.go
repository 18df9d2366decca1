package repository

import (
	"context"

	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/domain"
)

// JournalRepository defines the append-only audit trail for ledger mutations.
// Entries are never read back into the ledger. Appends from concurrent
// requests may interleave, so readers order payments by order ID rather than
// by arrival.
type JournalRepository interface {
	// AppendOrder records a created order.
	AppendOrder(ctx context.Context, order *domain.Order) error

	// AppendPayment records an accepted payment.
	AppendPayment(ctx context.Context, payment *domain.Payment) error
}
