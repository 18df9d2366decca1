package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/service"
)

// errInvalidBody is reported when a request body cannot be decoded.
var errInvalidBody = errors.New("invalid request body")

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// bindJSON decodes the request body into obj. An empty body leaves obj at its
// zero value, as if every field were omitted.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidBody
	}
	return nil
}

// wholeID converts a JSON number to a record ID. ok is false for fractional
// values, which match no record.
func wholeID(v float64) (id int, ok bool) {
	id = int(v)
	return id, float64(id) == v
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(code, ErrorResponse{Error: errorMessage(err)})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps ledger errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrInsufficientAmount),
		errors.Is(err, service.ErrAmountExceedsTotal),
		errors.Is(err, errInvalidBody):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the client-facing text for err.
func errorMessage(err error) string {
	var exceeds *service.AmountExceedsTotalError

	switch {
	case errors.Is(err, service.ErrProductNotFound):
		return "Product not found"
	case errors.Is(err, service.ErrOrderNotFound):
		return "Order not found"
	case errors.Is(err, service.ErrInsufficientAmount):
		return "Insufficient payment amount"
	case errors.As(err, &exceeds):
		return "Payment amount exceeds order total, please pay " + exceeds.Required.String()
	case errors.Is(err, errInvalidBody):
		return "Invalid request body"
	default:
		return "Internal server error"
	}
}
