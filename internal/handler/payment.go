package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/service"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	ledger *service.Ledger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ledger *service.Ledger) *PaymentHandler {
	return &PaymentHandler{ledger: ledger}
}

// CreatePaymentRequest is the HTTP request body for paying an order.
type CreatePaymentRequest struct {
	OrderID float64 `json:"orderId"`
	Amount  float64 `json:"amount"`
}

// PaymentResponse is the confirmation returned for an accepted payment.
type PaymentResponse struct {
	Message string  `json:"message"`
	OrderID int     `json:"orderId"`
	Amount  float64 `json:"amount"`
}

// PaymentRecordResponse is the HTTP representation of a recorded payment.
type PaymentRecordResponse struct {
	OrderID int     `json:"orderId"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
}

// CreatePayment handles POST /payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	orderID, ok := wholeID(req.OrderID)
	if !ok {
		respondError(c, service.ErrOrderNotFound)
		return
	}

	payment, err := h.ledger.CreatePayment(c.Request.Context(), orderID, decimal.NewFromFloat(req.Amount))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, PaymentResponse{
		Message: "Payment successful",
		OrderID: payment.OrderID,
		Amount:  req.Amount,
	})
}

// List handles GET /payments
func (h *PaymentHandler) List(c *gin.Context) {
	payments := h.ledger.Payments(c.Request.Context())

	response := make([]PaymentRecordResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, PaymentRecordResponse{
			OrderID: p.OrderID,
			Amount:  p.Amount.InexactFloat64(),
			Status:  string(p.Status),
		})
	}

	respondJSON(c, http.StatusOK, response)
}
