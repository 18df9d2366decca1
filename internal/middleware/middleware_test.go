package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	internalRedis "github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/redis"
)

// memoryResponseStore is an in-memory ResponseStoreInterface.
type memoryResponseStore struct {
	mu        sync.Mutex
	responses map[string]*internalRedis.CachedResponse
	getErr    error
}

func newMemoryResponseStore() *memoryResponseStore {
	return &memoryResponseStore{responses: make(map[string]*internalRedis.CachedResponse)}
}

func (s *memoryResponseStore) Get(ctx context.Context, key string) (*internalRedis.CachedResponse, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.responses[key], nil
}

func (s *memoryResponseStore) Set(ctx context.Context, key string, resp *internalRedis.CachedResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[key] = resp
	return nil
}

func newCountingRouter(store internalRedis.ResponseStoreInterface, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(IdempotencyMiddleware(store))
	router.POST("/orders", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusCreated, gin.H{"id": *calls})
	})
	router.GET("/orders", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusOK, gin.H{"id": *calls})
	})
	return router
}

func doRequest(router http.Handler, method, path, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	calls := 0
	router := newCountingRouter(newMemoryResponseStore(), &calls)

	first := doRequest(router, http.MethodPost, "/orders", "abc")
	second := doRequest(router, http.MethodPost, "/orders", "abc")

	if calls != 1 {
		t.Errorf("expected handler to run once, ran %d times", calls)
	}
	if second.Code != http.StatusCreated {
		t.Errorf("expected replayed status 201, got %d", second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("expected identical bodies, got %q and %q", first.Body.String(), second.Body.String())
	}
	if second.Header().Get("Idempotent-Replayed") != "true" {
		t.Error("expected replay marker header")
	}
}

func TestIdempotency_DifferentKeysRunHandler(t *testing.T) {
	calls := 0
	router := newCountingRouter(newMemoryResponseStore(), &calls)

	doRequest(router, http.MethodPost, "/orders", "a")
	doRequest(router, http.MethodPost, "/orders", "b")

	if calls != 2 {
		t.Errorf("expected 2 handler calls, got %d", calls)
	}
}

func TestIdempotency_IgnoresRequestsWithoutKey(t *testing.T) {
	calls := 0
	router := newCountingRouter(newMemoryResponseStore(), &calls)

	doRequest(router, http.MethodPost, "/orders", "")
	doRequest(router, http.MethodPost, "/orders", "")

	if calls != 2 {
		t.Errorf("expected 2 handler calls, got %d", calls)
	}
}

func TestIdempotency_IgnoresGet(t *testing.T) {
	calls := 0
	router := newCountingRouter(newMemoryResponseStore(), &calls)

	doRequest(router, http.MethodGet, "/orders", "abc")
	doRequest(router, http.MethodGet, "/orders", "abc")

	if calls != 2 {
		t.Errorf("expected 2 handler calls, got %d", calls)
	}
}

func TestIdempotency_StoreErrorFallsThrough(t *testing.T) {
	calls := 0
	store := newMemoryResponseStore()
	store.getErr = errors.New("redis down")
	router := newCountingRouter(store, &calls)

	w := doRequest(router, http.MethodPost, "/orders", "abc")

	if calls != 1 || w.Code != http.StatusCreated {
		t.Errorf("expected request to be served normally, calls=%d code=%d", calls, w.Code)
	}
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	id := w.Header().Get(RequestIDHeader)
	if id == "" || id != w.Body.String() {
		t.Errorf("expected generated id in header and context, got header %q body %q", id, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "client-id" {
		t.Errorf("expected client id to be kept, got %q", got)
	}
}

func TestFormatAccessLog(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set("User-Agent", "curl/8.0")

	line := formatAccessLog(gin.LogFormatterParams{
		Request:    req,
		Method:     http.MethodPost,
		Path:       "/orders",
		StatusCode: http.StatusCreated,
		Latency:    1500 * time.Microsecond,
		BodySize:   48,
		ClientIP:   "10.0.0.1",
		Keys:       map[string]any{RequestIDKey: "req-1"},
	})

	want := "POST /orders 201 1.500 ms - 48 10.0.0.1 curl/8.0 - req-1\n"
	if line != want {
		t.Errorf("expected %q, got %q", want, line)
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware())
	router.POST("/orders", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/orders", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected allow-origin header")
	}
}
