package middleware

import (
	"github.com/bukukas/bukukas_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private type for request-context keys. Using a custom type
// prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	scopeKey     = contextKey("accessScope")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetScopeFromContext retrieves the caller's access scope, set once per
// request by the auth middleware.
func GetScopeFromContext(c *gin.Context) (domain.AccessScope, bool) {
	scopeVal := c.Request.Context().Value(scopeKey)
	if scopeVal == nil {
		return domain.AccessScope{}, false
	}
	scope, ok := scopeVal.(domain.AccessScope)
	return scope, ok
}
