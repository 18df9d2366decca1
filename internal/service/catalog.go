package service

import (
	"github.com/shopspring/decimal"

	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/domain"
)

// DefaultCatalog returns the products the service is seeded with.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Laptop", Price: decimal.NewFromInt(1000)},
		{ID: 2, Name: "Phone", Price: decimal.NewFromInt(500)},
	}
}
