// Package middleware provides shared gin middleware.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the per-request correlation id.
const HeaderRequestID = "X-Request-ID"

// ContextKeyRequestID is the gin context key the request id is stored
// under, for handlers that want to log it.
const ContextKeyRequestID = "request_id"

// RequestID attaches a correlation id to every request. An id supplied
// by the caller is kept; otherwise a fresh UUID is generated. The id is
// echoed back in the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, rid)
		c.Header(HeaderRequestID, rid)
		c.Next()
	}
}
