package util

import (
	"github.com/gin-gonic/gin"
)

// CurrentUserKey is the gin context key under which the auth middleware stores the resolved user.
const CurrentUserKey = "current_user"

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// CurrentUser returns the user injected by the auth middleware.
func CurrentUser[U any](c *gin.Context) (U, bool) {
	var zero U
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return zero, false
	}
	u, ok := v.(U)
	if !ok {
		return zero, false
	}
	return u, true
}

// RequestID returns the id assigned by the request logger, or "".
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
