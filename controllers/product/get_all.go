package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/avinashrajmsk/Ravi/models"
	"gorm.io/gorm"
)

// GetProducts returns the catalog, newest first, with limit/offset paging.
// GET /api/products?limit=20&offset=0
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil || limit <= 0 {
			limit = 20
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}

		var products []models.Product
		if err := db.
			Order("created_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}
