package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestID is a Gin middleware that tags each request with an identifier.
//
// Behavior:
//   - Reuses an incoming X-Request-ID header when it is a valid UUID
//     (so a UI can correlate its own logs), otherwise generates a v4 UUID.
//   - Stores it in the Gin context under RequestIDKey.
//   - Echoes it in the X-Request-ID response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
