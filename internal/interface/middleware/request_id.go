package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationIDHeader is echoed on every response so callers can join their
// request with the server-side log lines.
const CorrelationIDHeader = "X-Correlation-ID"

const correlationIDKey = "correlation_id"

// RequestID injects a unique correlation id into the Gin context for every
// request and sets it on the response before any later stage can
// short-circuit.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(correlationIDKey, id)
		c.Writer.Header().Set(CorrelationIDHeader, id)
		c.Next()
	}
}

// CorrelationID returns the correlation id assigned to the request.
func CorrelationID(c *gin.Context) string {
	return c.GetString(correlationIDKey)
}
