package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/handler"
	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/metrics"
	"github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/middleware"
	internalRedis "github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/redis"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	PaymentHandler *handler.PaymentHandler
	DocsHandler    *handler.DocsHandler
	Metrics        *metrics.Metrics
	ResponseStore  internalRedis.ResponseStoreInterface // nil disables idempotent replay
	NewRelicApp    *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(middleware.CORSMiddleware())

	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(deps.Metrics))
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	if deps.ResponseStore != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.ResponseStore))
	}

	router.GET("/", handler.Welcome)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/products", deps.ProductHandler.List)

	router.POST("/orders", deps.OrderHandler.CreateOrder)
	router.GET("/orders", deps.OrderHandler.List)

	router.POST("/payments", deps.PaymentHandler.CreatePayment)
	router.GET("/payments", deps.PaymentHandler.List)

	router.GET("/api-docs", deps.DocsHandler.Index)
	router.GET(handler.DocsJSONPath, deps.DocsHandler.JSON)
	router.GET(handler.DocsYAMLPath, deps.DocsHandler.YAML)
	router.GET(handler.DocsUIPrefix+"/*any", deps.DocsHandler.UI)

	return router
}
