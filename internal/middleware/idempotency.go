package middleware

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	internalRedis "github.com/James-Chase-Consulting/qa-test-ecommerce-app/internal/redis"
)

// IdempotencyHeader carries the client-chosen replay key.
const IdempotencyHeader = "Idempotency-Key"

// responseWriter wraps gin.ResponseWriter to capture the response.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the stored response for POST requests that
// repeat an Idempotency-Key. Store failures fall through to normal handling.
func IdempotencyMiddleware(store internalRedis.ResponseStoreInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := strings.TrimSpace(c.GetHeader(IdempotencyHeader))
		if key == "" {
			c.Next()
			return
		}
		key = c.Request.Method + ":" + c.Request.URL.Path + ":" + key

		ctx := c.Request.Context()

		cached, err := store.Get(ctx, key)
		if err != nil {
			c.Next()
			return
		}

		if cached != nil {
			contentType := cached.Headers.Get("Content-Type")
			if contentType == "" {
				contentType = "application/json"
			}
			c.Header("Idempotent-Replayed", "true")
			c.Data(cached.StatusCode, contentType, cached.Body)
			c.Abort()
			return
		}

		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = w

		c.Next()

		// Server errors are not cached so the client can retry.
		if status := c.Writer.Status(); status >= 200 && status < 500 {
			headers := make(http.Header)
			if ct := c.Writer.Header().Get("Content-Type"); ct != "" {
				headers.Set("Content-Type", ct)
			}
			_ = store.Set(ctx, key, &internalRedis.CachedResponse{
				StatusCode: status,
				Body:       w.body.Bytes(),
				Headers:    headers,
			})
		}
	}
}
