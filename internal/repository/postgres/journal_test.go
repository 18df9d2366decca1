package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/domain"
)

type execCall struct {
	query string
	args  []any
}

// recordingQuerier captures ExecContext calls.
type recordingQuerier struct {
	calls   []execCall
	execErr error
}

func (q *recordingQuerier) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	q.calls = append(q.calls, execCall{query: query, args: args})
	if q.execErr != nil {
		return nil, q.execErr
	}
	return driver.RowsAffected(1), nil
}

func TestJournal_AppendOrder(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewJournalRepositoryWithQuerier(q)

	order := &domain.Order{
		ID:        1,
		ProductID: 1,
		Quantity:  decimal.NewFromInt(2),
		Total:     decimal.NewFromInt(2000),
	}
	if err := repo.AppendOrder(context.Background(), order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(q.calls) != 1 {
		t.Fatalf("expected 1 exec, got %d", len(q.calls))
	}
	call := q.calls[0]
	if !strings.Contains(call.query, "INSERT INTO journal_orders") {
		t.Errorf("unexpected query: %s", call.query)
	}
	if len(call.args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(call.args))
	}
	if call.args[0] != 1 || call.args[1] != 1 {
		t.Errorf("expected order and product id 1, got %v and %v", call.args[0], call.args[1])
	}
	total, ok := call.args[3].(decimal.Decimal)
	if !ok || !total.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected total 2000, got %v", call.args[3])
	}
}

func TestJournal_AppendPayment(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewJournalRepositoryWithQuerier(q)

	payment := &domain.Payment{
		OrderID: 3,
		Amount:  decimal.NewFromInt(500),
		Status:  domain.PaymentStatusPaid,
	}
	if err := repo.AppendPayment(context.Background(), payment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := q.calls[0]
	if !strings.Contains(call.query, "INSERT INTO journal_payments") {
		t.Errorf("unexpected query: %s", call.query)
	}
	if call.args[2] != "Paid" {
		t.Errorf("expected status Paid, got %v", call.args[2])
	}
}

func TestJournal_PropagatesExecError(t *testing.T) {
	q := &recordingQuerier{execErr: errors.New("connection refused")}
	repo := NewJournalRepositoryWithQuerier(q)

	err := repo.AppendPayment(context.Background(), &domain.Payment{OrderID: 1, Status: domain.PaymentStatusPaid})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestJournal_EnsureSchemaWrapsError(t *testing.T) {
	execErr := errors.New("permission denied")
	q := &recordingQuerier{execErr: execErr}
	repo := NewJournalRepositoryWithQuerier(q)

	err := repo.EnsureSchema(context.Background())
	if !errors.Is(err, execErr) {
		t.Errorf("expected wrapped exec error, got %v", err)
	}
	if !strings.Contains(q.calls[0].query, "journal_orders") || !strings.Contains(q.calls[0].query, "journal_payments") {
		t.Error("expected schema to create both journal tables")
	}
}
