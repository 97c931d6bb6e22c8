package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key under which the request ID is stored.
const RequestIDKey = "request_id"

// RequestID injects a unique identifier into every incoming request.
//
// Behavior:
//   - Generates a new UUID (v4).
//   - Stores it in the gin context under RequestIDKey.
//   - Exposes it to clients via the X-Request-ID response header.
//
// The ID allows a single request to be traced across logs and client
// reports.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
