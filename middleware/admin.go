package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	adminController "github.com/avinashrajmsk/Ravi/controllers/admin"
	"gorm.io/gorm"
)

// RequireAdminSession guards back-office endpoints. The bearer token is
// checked against admin_auth rows refreshed within the last 24 hours;
// there is no revocation list beyond that window.
func RequireAdminSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided"})
			c.Abort()
			return
		}

		if !adminController.TokenIsFresh(db, token) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
