package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/avinashrajmsk/Ravi/models"
	"gorm.io/gorm"
)

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	Unit          *string  `json:"unit"`
	Category      *string  `json:"category"`
	InStock       *bool    `json:"in_stock"`
	WeightOptions *string  `json:"weight_options"`
	ImageURL      *string  `json:"image_url"`
	LovedBy       *int     `json:"loved_by"`
}

// UpdateProduct applies a partial update: fields omitted from the body
// keep their stored values. The merge is done in a single UPDATE built
// from the supplied fields, so concurrent writers cannot clobber
// columns they did not touch.
// PUT /api/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.OriginalPrice != nil {
			updates["original_price"] = *req.OriginalPrice
		}
		if req.Unit != nil {
			updates["unit"] = *req.Unit
		}
		if req.Category != nil {
			updates["category"] = *req.Category
		}
		if req.InStock != nil {
			updates["in_stock"] = *req.InStock
		}
		if req.WeightOptions != nil {
			updates["weight_options"] = *req.WeightOptions
		}
		if req.ImageURL != nil {
			updates["image_url"] = *req.ImageURL
		}
		if req.LovedBy != nil {
			updates["loved_by"] = *req.LovedBy
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
			return
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated successfully"})
	}
}
