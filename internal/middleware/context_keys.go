package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the request context key for the authenticated user's id.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user id set by the auth
// middleware. The second return reports whether a user is present.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, ok := c.Request.Context().Value(userIDKey).(string); ok && userID != "" {
		return userID, true
	}
	return "", false
}
