package middleware

import "github.com/gin-gonic/gin"

// adminUserKey is the key used to store the authenticated admin username in
// the request context.
const adminUserKey = contextKey("adminUser")

// GetAdminFromContext retrieves the authenticated admin username, reporting
// whether one was present.
func GetAdminFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(adminUserKey); v != nil {
		if username, ok := v.(string); ok {
			return username, true
		}
	}
	return "", false
}
