package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/domain"
)

// JournalRepository is a PostgreSQL implementation of repository.JournalRepository.
type JournalRepository struct {
	q Querier
}

// NewJournalRepository creates a new PostgreSQL journal.
func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{q: db}
}

// NewJournalRepositoryWithQuerier creates a journal on any Querier, such as a transaction.
func NewJournalRepositoryWithQuerier(q Querier) *JournalRepository {
	return &JournalRepository{q: q}
}

// seq records arrival order only. A payment row can precede the row of the
// order it pays; join on order_id to reconstruct the ledger.
const schema = `
	CREATE TABLE IF NOT EXISTS journal_orders (
		seq         BIGSERIAL PRIMARY KEY,
		order_id    INTEGER NOT NULL,
		product_id  INTEGER NOT NULL,
		quantity    NUMERIC NOT NULL,
		total       NUMERIC NOT NULL,
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE TABLE IF NOT EXISTS journal_payments (
		seq         BIGSERIAL PRIMARY KEY,
		order_id    INTEGER NOT NULL,
		amount      NUMERIC NOT NULL,
		status      TEXT NOT NULL,
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

// EnsureSchema creates the journal tables if they do not exist.
func (r *JournalRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create journal schema: %w", err)
	}
	return nil
}

// AppendOrder records a created order.
func (r *JournalRepository) AppendOrder(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO journal_orders (order_id, product_id, quantity, total)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.q.ExecContext(ctx, query,
		order.ID,
		order.ProductID,
		order.Quantity,
		order.Total,
	)

	return err
}

// AppendPayment records an accepted payment.
func (r *JournalRepository) AppendPayment(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO journal_payments (order_id, amount, status)
		VALUES ($1, $2, $3)
	`

	_, err := r.q.ExecContext(ctx, query,
		payment.OrderID,
		payment.Amount,
		string(payment.Status),
	)

	return err
}
