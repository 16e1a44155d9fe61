package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header carrying the request id in and out.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key the request id is stored under.
	RequestIDKey = "request_id"
)

// RequestID creates a Gin middleware that assigns every request a unique id,
// reusing the caller's when one is supplied.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
