// Package docs builds the OpenAPI 3.0 description of the HTTP API.
package docs

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// New returns the API description. Each route's operation is declared next to
// the schema it accepts and returns.
func New(version string) *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       "Ecommerce API",
			Version:     version,
			Description: "API documentation for Ecommerce",
		},
		Paths: openapi3.NewPaths(),
	}

	doc.AddOperation("/", http.MethodGet, welcomeOperation())
	doc.AddOperation("/products", http.MethodGet, listProductsOperation())
	doc.AddOperation("/orders", http.MethodPost, createOrderOperation())
	doc.AddOperation("/payments", http.MethodPost, createPaymentOperation())

	return doc
}

func welcomeOperation() *openapi3.Operation {
	op := newOperation("Welcome message", 1)
	op.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Welcome message").
		WithContent(openapi3.Content{
			"text/plain": openapi3.NewMediaType().WithSchema(openapi3.NewStringSchema()),
		}))
	return op
}

func listProductsOperation() *openapi3.Operation {
	product := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewIntegerSchema()).
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("price", openapi3.NewFloat64Schema())

	op := newOperation("Fetch all products", 1)
	op.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("Success").
		WithJSONSchema(openapi3.NewArraySchema().WithItems(product)))
	return op
}

func createOrderOperation() *openapi3.Operation {
	body := openapi3.NewObjectSchema().
		WithProperty("productId", number("ID of the product")).
		WithProperty("quantity", number("Quantity of the product")).
		WithRequired([]string{"productId", "quantity"})
	body.Example = map[string]any{"productId": 1.0, "quantity": 2.0}

	order := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewIntegerSchema()).
		WithProperty("productId", openapi3.NewIntegerSchema()).
		WithProperty("quantity", openapi3.NewFloat64Schema()).
		WithProperty("total", openapi3.NewFloat64Schema())

	op := newOperation("Create an order", 3)
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(body),
	}
	op.AddResponse(http.StatusCreated, openapi3.NewResponse().WithDescription("Created").WithJSONSchema(order))
	op.AddResponse(http.StatusBadRequest, errorResponse("Invalid request body"))
	op.AddResponse(http.StatusNotFound, errorResponse("Product not found"))
	return op
}

func createPaymentOperation() *openapi3.Operation {
	body := openapi3.NewObjectSchema().
		WithProperty("orderId", number("ID of the order")).
		WithProperty("amount", number("Amount of the payment")).
		WithRequired([]string{"orderId", "amount"})

	confirmation := openapi3.NewObjectSchema().
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("orderId", openapi3.NewIntegerSchema()).
		WithProperty("amount", openapi3.NewFloat64Schema())

	op := newOperation("Make a payment", 3)
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(body),
	}
	op.AddResponse(http.StatusOK, openapi3.NewResponse().WithDescription("Payment successful").WithJSONSchema(confirmation))
	op.AddResponse(http.StatusBadRequest, errorResponse("Insufficient payment amount/Payment amount exceeds order total"))
	op.AddResponse(http.StatusNotFound, errorResponse("Order not found"))
	return op
}

// newOperation returns an operation with no responses yet.
func newOperation(summary string, responses int) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.Summary = summary
	op.Responses = openapi3.NewResponsesWithCapacity(responses)
	return op
}

func number(description string) *openapi3.Schema {
	s := openapi3.NewFloat64Schema()
	s.Description = description
	return s
}

func errorResponse(description string) *openapi3.Response {
	return openapi3.NewResponse().
		WithDescription(description).
		WithJSONSchema(openapi3.NewObjectSchema().WithProperty("error", openapi3.NewStringSchema()))
}
