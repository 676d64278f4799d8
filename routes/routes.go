package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires the public storefront endpoints and the
// session-protected back-office endpoints under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupStorefrontRoutes(r, db)
	SetupAdminRoutes(r, db)
}
