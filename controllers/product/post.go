package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/avinashrajmsk/Ravi/models"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required"`
	OriginalPrice float64 `json:"original_price"`
	Unit          string  `json:"unit"`
	Category      string  `json:"category"`
	InStock       *bool   `json:"in_stock"`
	WeightOptions string  `json:"weight_options"`
	ImageURL      string  `json:"image_url"`
}

// CreateProduct inserts a catalog row and returns the new id only.
// POST /api/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:          req.Name,
			Description:   req.Description,
			Price:         req.Price,
			OriginalPrice: req.OriginalPrice,
			Unit:          orDefault(req.Unit, "kg"),
			Category:      orDefault(req.Category, "General"),
			InStock:       req.InStock == nil || *req.InStock,
			WeightOptions: orDefault(req.WeightOptions, "1kg"),
			ImageURL:      req.ImageURL,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "Product added successfully",
			"product_id": product.ID,
		})
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
