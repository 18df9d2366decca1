package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/service"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	ledger *service.Ledger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(ledger *service.Ledger) *ProductHandler {
	return &ProductHandler{ledger: ledger}
}

// ProductResponse is the HTTP representation of a product.
type ProductResponse struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	products := h.ledger.ListProducts(c.Request.Context())

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, ProductResponse{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price.InexactFloat64(),
		})
	}

	respondJSON(c, http.StatusOK, response)
}
