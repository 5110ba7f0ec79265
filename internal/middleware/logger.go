package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bikepulse/internal/logger"
)

// RequestLogger is a Gin middleware that emits one structured log line per
// request: method, route, query, status, latency and request ID.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
//
// Example log output:
//
//	{"level":"info","request_id":"123e...","method":"GET","path":"/api/v1/summary","query":"start=2011-01-01","status":200,"latency_ms":3,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		ev := logger.L().Info()
		if status >= 500 {
			ev = logger.L().Error()
		} else if status >= 400 {
			ev = logger.L().Warn()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		ev.Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Str("route", c.FullPath()).
			Str("query", query).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
