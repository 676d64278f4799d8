package orderControllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/avinashrajmsk/Ravi/models"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	OrderNumber     string           `json:"order_number"`
	UserID          string           `json:"user_id"`
	CustomerName    string           `json:"customer_name" binding:"required"`
	CustomerEmail   string           `json:"customer_email"`
	CustomerPhone   string           `json:"customer_phone" binding:"required"`
	CustomerAddress string           `json:"customer_address" binding:"required"`
	OrderNotes      string           `json:"order_notes"`
	Items           models.LineItems `json:"items"`
	TotalAmount     float64          `json:"total_amount"`
	Status          string           `json:"status"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// generateOrderNumber derives "SG-" + compact timestamp (YYMMDDHHMMSS)
// + a 2-digit random suffix. Retried submissions get fresh numbers;
// there is no idempotency key.
func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("SG-%s%02d", now.Format("060102150405"), rand.Intn(100))
}

// CreateOrder stores a checkout submission. The response echoes the row
// we just built rather than re-reading it from the store.
// POST /api/orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order: " + err.Error()})
			return
		}

		if req.OrderNumber == "" {
			req.OrderNumber = generateOrderNumber(time.Now())
		}
		status := models.OrderStatus(req.Status)
		if req.Status == "" {
			status = models.OrderStatusPending
		} else if !models.ValidOrderStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid status. Must be one of: " + strings.Join(models.OrderStatuses(), ", "),
			})
			return
		}
		userID := req.UserID
		if userID == "" {
			userID = req.CustomerPhone
		}

		order := models.Order{
			OrderNumber:     req.OrderNumber,
			UserID:          userID,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			CustomerAddress: req.CustomerAddress,
			OrderNotes:      req.OrderNotes,
			Items:           req.Items,
			TotalAmount:     req.TotalAmount,
			Status:          status,
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create order"})
			return
		}

		broadcastOrderEvent(orderEvent{Type: "order_created", Order: order})

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order created successfully",
			"order":   order,
		})
	}
}

// GetOrders lists orders newest first with limit/offset paging (admin).
// GET /api/orders?limit=20&offset=0
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil || limit <= 0 {
			limit = 20
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}

		var orders []models.Order
		if err := db.
			Order("created_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GetOrderByID returns one order by numeric id or order number.
// GET /api/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.Where("id = ? OR order_number = ?", id, id).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// GetUserOrders lists a customer's orders by user id (phone).
// GET /api/orders/user/:userId
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User ID is required"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders, "count": len(orders)})
	}
}

// UpdateOrderStatus moves an order along the fulfilment lifecycle. Any
// value outside the six permitted statuses is rejected and the stored
// status is left untouched.
// PUT /api/orders/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}
		if !models.ValidOrderStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid status. Must be one of: " + strings.Join(models.OrderStatuses(), ", "),
			})
			return
		}

		result := db.Model(&models.Order{}).
			Where("id = ?", orderID).
			Update("status", models.OrderStatus(req.Status))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err == nil {
			broadcastOrderEvent(orderEvent{Type: "status_updated", Order: order})
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated successfully"})
	}
}

// DeleteOrder removes an order (admin cleanup).
// DELETE /api/orders/:id
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		result := db.Delete(&models.Order{}, "id = ?", orderID)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully"})
	}
}
