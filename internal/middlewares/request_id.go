package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id so log lines for one request can
// be correlated. An id supplied by the client is kept.
func RequestID(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	c.Set("requestId", id)
	c.Writer.Header().Set(RequestIDHeader, id)

	c.Next()
}
