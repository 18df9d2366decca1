package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/domain"
	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/service"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	ledger *service.Ledger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(ledger *service.Ledger) *OrderHandler {
	return &OrderHandler{ledger: ledger}
}

// CreateOrderRequest is the HTTP request body for placing an order.
type CreateOrderRequest struct {
	ProductID float64 `json:"productId"`
	Quantity  float64 `json:"quantity"`
}

// OrderResponse is the HTTP representation of an order.
type OrderResponse struct {
	ID        int     `json:"id"`
	ProductID int     `json:"productId"`
	Quantity  float64 `json:"quantity"`
	Total     float64 `json:"total"`
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	productID, ok := wholeID(req.ProductID)
	if !ok {
		respondError(c, service.ErrProductNotFound)
		return
	}

	order, err := h.ledger.CreateOrder(c.Request.Context(), productID, decimal.NewFromFloat(req.Quantity))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, newOrderResponse(order))
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	orders := h.ledger.Orders(c.Request.Context())

	response := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, newOrderResponse(&orders[i]))
	}

	respondJSON(c, http.StatusOK, response)
}

func newOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:        order.ID,
		ProductID: order.ProductID,
		Quantity:  order.Quantity.InexactFloat64(),
		Total:     order.Total.InexactFloat64(),
	}
}
