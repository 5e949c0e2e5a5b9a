package response

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the Gin context key for the request ID.
const ContextKeyRequestID = "request_id"

// maxRequestIDLen caps a caller-supplied X-Request-ID before it reaches logs.
const maxRequestIDLen = 64

type requestIDKey struct{}

// RequestIDMiddleware tags every request with an ID, reusing a well-formed
// X-Request-ID from the caller. The ID is echoed in the response header,
// stored on the Gin context for the envelope and on the request context for
// services that log.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if !validRequestID(reqID) {
			reqID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, reqID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDKey{}, reqID))
		c.Header("X-Request-ID", reqID)
		c.Next()
	}
}

// RequestIDFromContext returns the request ID set by RequestIDMiddleware,
// or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// validRequestID accepts short IDs made of letters, digits, '-', '_' and '.'.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}
