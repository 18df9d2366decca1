package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/domain"
)

// ──────────────────────────────────────────────
// MOCK JOURNAL REPOSITORY
// ──────────────────────────────────────────────

// MockJournalRepository is a mock implementation of JournalRepository.
type MockJournalRepository struct {
	mu       sync.Mutex
	orders   []domain.Order
	payments []domain.Payment

	// Counters for verification
	AppendOrderCallCount   int32
	AppendPaymentCallCount int32

	// Error injection
	AppendOrderError   error
	AppendPaymentError error

	// ctx.Err() observed by the most recent append
	LastContextErr error
}

// NewMockJournalRepository creates a new mock journal.
func NewMockJournalRepository() *MockJournalRepository {
	return &MockJournalRepository{}
}

func (m *MockJournalRepository) AppendOrder(ctx context.Context, order *domain.Order) error {
	atomic.AddInt32(&m.AppendOrderCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastContextErr = ctx.Err()
	if m.AppendOrderError != nil {
		return m.AppendOrderError
	}
	m.orders = append(m.orders, *order)
	return nil
}

func (m *MockJournalRepository) AppendPayment(ctx context.Context, payment *domain.Payment) error {
	atomic.AddInt32(&m.AppendPaymentCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastContextErr = ctx.Err()
	if m.AppendPaymentError != nil {
		return m.AppendPaymentError
	}
	m.payments = append(m.payments, *payment)
	return nil
}

// Orders returns journaled orders for test assertions.
func (m *MockJournalRepository) Orders() []domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Order(nil), m.orders...)
}

// Payments returns journaled payments for test assertions.
func (m *MockJournalRepository) Payments() []domain.Payment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Payment(nil), m.payments...)
}
