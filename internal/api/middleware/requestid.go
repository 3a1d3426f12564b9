package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Dave-Meloncelli/reliquary-desktop/internal/shared/id"
)

// RequestIDHeader is the response header carrying the request id.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key request ids are stored under.
const RequestIDKey = "request_id"

// RequestID assigns a ULID to every request. An id supplied by the caller
// in X-Request-ID is propagated instead of replaced.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = id.NewRequestID().String()
		}

		c.Set(RequestIDKey, reqID)
		c.Writer.Header().Set(RequestIDHeader, reqID)
		c.Next()
	}
}
