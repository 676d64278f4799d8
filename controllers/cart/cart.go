package cartControllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/avinashrajmsk/Ravi/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AddCartItemRequest struct {
	UserPhone    string  `json:"user_phone" binding:"required"`
	ProductID    uint    `json:"product_id" binding:"required"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
	Weight       string  `json:"weight"`
}

func historyDetails(v interface{}) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(data)
}

// GetCart returns a user's server-persisted cart rows.
// GET /api/cart?phone=...
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := c.Query("phone")
		if phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Phone number is required"})
			return
		}

		var items []models.CartItem
		if err := db.
			Where("user_phone = ?", phone).
			Order("created_at DESC").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "cart_items": items, "count": len(items)})
	}
}

// AddCartItem upserts one cart line. A line already present for the
// same (user_phone, product_id, weight) gets its quantity incremented
// in place; anything else is a fresh row. Every mutation is mirrored
// into cart_history.
// POST /api/cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User phone and product ID are required"})
			return
		}
		if req.Weight == "" {
			req.Weight = "1kg"
		}
		if req.Quantity <= 0 {
			req.Quantity = 1
		}

		var updated bool
		err := db.Transaction(func(tx *gorm.DB) error {
			var existing models.CartItem
			err := tx.Where("user_phone = ? AND product_id = ? AND weight = ?",
				req.UserPhone, req.ProductID, req.Weight).First(&existing).Error

			if err == nil {
				updated = true
				if err := tx.Model(&existing).
					Update("quantity", gorm.Expr("quantity + ?", req.Quantity)).Error; err != nil {
					return err
				}
				return tx.Create(&models.CartHistory{
					UserPhone:   req.UserPhone,
					Action:      "update",
					ProductID:   req.ProductID,
					ProductName: req.ProductName,
					Quantity:    req.Quantity,
					Details: historyDetails(map[string]interface{}{
						"weight":       req.Weight,
						"new_quantity": existing.Quantity + req.Quantity,
					}),
				}).Error
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			item := models.CartItem{
				UserPhone:    req.UserPhone,
				ProductID:    req.ProductID,
				ProductName:  req.ProductName,
				ProductPrice: req.ProductPrice,
				ProductImage: req.ProductImage,
				Quantity:     req.Quantity,
				Weight:       req.Weight,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			return tx.Create(&models.CartHistory{
				UserPhone:   req.UserPhone,
				Action:      "add",
				ProductID:   req.ProductID,
				ProductName: req.ProductName,
				Quantity:    req.Quantity,
				Details:     historyDetails(map[string]interface{}{"weight": req.Weight}),
			}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add to cart"})
			return
		}

		if updated {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart item updated"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to cart"})
	}
}

// RemoveCartItem deletes one cart row by id and phone, logging the
// removal. Removing a row that is already gone still succeeds; the
// client treats the server copy as best-effort.
// DELETE /api/cart?id=...&phone=...
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Query("id")
		phone := c.Query("phone")
		if itemID == "" || phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cart item ID and phone are required"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var item models.CartItem
			err := tx.Where("id = ? AND user_phone = ?", itemID, phone).First(&item).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			if err != nil {
				return err
			}

			if err := tx.Where("id = ? AND user_phone = ?", itemID, phone).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Create(&models.CartHistory{
				UserPhone:   phone,
				Action:      "remove",
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				Details:     historyDetails(map[string]interface{}{"weight": item.Weight}),
			}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove from cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from cart"})
	}
}
