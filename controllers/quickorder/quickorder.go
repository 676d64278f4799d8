package quickOrderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/avinashrajmsk/Ravi/models"
	"gorm.io/gorm"
)

type CreateQuickOrderRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	Message       string `json:"message"`
}

type UpdateQuickOrderRequest struct {
	ID         uint   `json:"id" binding:"required"`
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"admin_notes"`
}

// GetQuickOrders lists leads for the back office, newest first.
// GET /api/quick-orders
func GetQuickOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.QuickOrder
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load quick orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// CreateQuickOrder captures a WhatsApp bulk-order lead. Status always
// starts as pending regardless of input.
// POST /api/quick-orders
func CreateQuickOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateQuickOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		order := models.QuickOrder{
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Message:       req.Message,
			Status:        "pending",
		}
		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save quick order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Quick order saved successfully",
			"order_id": order.ID,
		})
	}
}

// UpdateQuickOrder sets a lead's status and admin notes.
// PUT /api/quick-orders
func UpdateQuickOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateQuickOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		result := db.Model(&models.QuickOrder{}).
			Where("id = ?", req.ID).
			Updates(map[string]interface{}{"status": req.Status, "admin_notes": req.AdminNotes})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update quick order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Quick order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quick order updated successfully"})
	}
}
