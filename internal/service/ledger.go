package service

import (
	"context"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/domain"
	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/metrics"
	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/repository"
)

// Ledger owns the product catalog, orders and payments, and enforces the
// rules linking them. All state lives in memory for the lifetime of the
// process.
//
// A single mutex guards the three collections so that order ID assignment
// (count of existing orders + 1) stays gap-free under concurrent requests.
// Journal writes happen after the mutex is released and outlive the caller's
// cancellation, so journal rows are not guaranteed to arrive in ledger order.
type Ledger struct {
	mu       sync.Mutex
	products []domain.Product
	orders   []domain.Order
	payments []domain.Payment

	journal repository.JournalRepository
	metrics *metrics.Metrics
}

// NewLedger creates a Ledger seeded with the given catalog.
// journal and m may be nil.
func NewLedger(catalog []domain.Product, journal repository.JournalRepository, m *metrics.Metrics) *Ledger {
	products := make([]domain.Product, len(catalog))
	copy(products, catalog)

	return &Ledger{
		products: products,
		journal:  journal,
		metrics:  m,
	}
}

// ListProducts returns the catalog in seed order.
func (l *Ledger) ListProducts(ctx context.Context) []domain.Product {
	l.mu.Lock()
	defer l.mu.Unlock()

	products := make([]domain.Product, len(l.products))
	copy(products, l.products)
	return products
}

// CreateOrder places an order for quantity units of the given product.
// Quantity is not range checked; a zero or negative quantity yields a zero
// or negative total.
func (l *Ledger) CreateOrder(ctx context.Context, productID int, quantity decimal.Decimal) (*domain.Order, error) {
	l.mu.Lock()

	product, ok := l.findProduct(productID)
	if !ok {
		l.mu.Unlock()
		l.metrics.ObserveOrder(metrics.OrderProductNotFound)
		return nil, ErrProductNotFound
	}

	order := domain.Order{
		ID:        len(l.orders) + 1,
		ProductID: productID,
		Quantity:  quantity,
		Total:     product.Price.Mul(quantity),
	}
	l.orders = append(l.orders, order)
	l.mu.Unlock()

	l.metrics.ObserveOrder(metrics.OrderCreated)
	if l.journal != nil {
		if err := l.journal.AppendOrder(context.WithoutCancel(ctx), &order); err != nil {
			log.Printf("journal: failed to append order %d: %v", order.ID, err)
		}
	}

	return &order, nil
}

// CreatePayment records a payment against an order. The amount must equal
// the order total exactly; there is no tolerance. Repeated payments for the
// same order are accepted.
func (l *Ledger) CreatePayment(ctx context.Context, orderID int, amount decimal.Decimal) (*domain.Payment, error) {
	l.mu.Lock()

	order, ok := l.findOrder(orderID)
	if !ok {
		l.mu.Unlock()
		l.metrics.ObservePayment(metrics.PaymentOrderNotFound)
		return nil, ErrOrderNotFound
	}

	switch {
	case amount.LessThan(order.Total):
		l.mu.Unlock()
		l.metrics.ObservePayment(metrics.PaymentInsufficient)
		return nil, ErrInsufficientAmount
	case amount.GreaterThan(order.Total):
		l.mu.Unlock()
		l.metrics.ObservePayment(metrics.PaymentExceedsTotal)
		return nil, &AmountExceedsTotalError{Required: order.Total}
	}

	payment := domain.Payment{
		OrderID: orderID,
		Amount:  amount,
		Status:  domain.PaymentStatusPaid,
	}
	l.payments = append(l.payments, payment)
	l.mu.Unlock()

	l.metrics.ObservePayment(metrics.PaymentPaid)
	if l.journal != nil {
		if err := l.journal.AppendPayment(context.WithoutCancel(ctx), &payment); err != nil {
			log.Printf("journal: failed to append payment for order %d: %v", payment.OrderID, err)
		}
	}

	return &payment, nil
}

// Orders returns a snapshot of all orders in creation order.
func (l *Ledger) Orders(ctx context.Context) []domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders := make([]domain.Order, len(l.orders))
	copy(orders, l.orders)
	return orders
}

// Payments returns a snapshot of all payments in creation order.
func (l *Ledger) Payments(ctx context.Context) []domain.Payment {
	l.mu.Lock()
	defer l.mu.Unlock()

	payments := make([]domain.Payment, len(l.payments))
	copy(payments, l.payments)
	return payments
}

// findProduct returns the first product with the given ID. Caller holds mu.
func (l *Ledger) findProduct(id int) (domain.Product, bool) {
	for _, p := range l.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// findOrder returns the first order with the given ID. Caller holds mu.
func (l *Ledger) findOrder(id int) (domain.Order, bool) {
	for _, o := range l.orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}
