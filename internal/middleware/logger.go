package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request:
// method url status response-time ms - content-length remote-addr user-agent referrer request-id
func AccessLog() gin.HandlerFunc {
	return gin.LoggerWithFormatter(formatAccessLog)
}

func formatAccessLog(p gin.LogFormatterParams) string {
	referrer := "-"
	userAgent := "-"
	if p.Request != nil {
		if r := p.Request.Referer(); r != "" {
			referrer = r
		}
		if ua := p.Request.UserAgent(); ua != "" {
			userAgent = ua
		}
	}

	requestID := "-"
	if id, ok := p.Keys[RequestIDKey].(string); ok {
		requestID = id
	}

	return fmt.Sprintf("%s %s %d %.3f ms - %d %s %s %s %s\n",
		p.Method,
		p.Path,
		p.StatusCode,
		float64(p.Latency.Microseconds())/1000,
		p.BodySize,
		p.ClientIP,
		userAgent,
		referrer,
		requestID,
	)
}
