package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/avinashrajmsk/Ravi/models"
	"gorm.io/gorm"
)

type SaveUserRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Pincode     string `json:"pincode"`
	City        string `json:"city"`
	State       string `json:"state"`
}

// SaveUser upserts a customer profile by phone number. Called on every
// login and checkout, so the stored profile tracks the latest details.
// POST /api/users
func SaveUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SaveUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Phone number and name are required"})
			return
		}

		var user models.User
		err := db.Where("phone_number = ?", req.PhoneNumber).First(&user).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save user data"})
			return
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{
				PhoneNumber: req.PhoneNumber,
				Name:        req.Name,
				Email:       req.Email,
				Address:     req.Address,
				Pincode:     req.Pincode,
				City:        req.City,
				State:       req.State,
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save user data"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "User created successfully", "user": user})
			return
		}

		updates := map[string]interface{}{
			"name":    req.Name,
			"email":   req.Email,
			"address": req.Address,
			"pincode": req.Pincode,
			"city":    req.City,
			"state":   req.State,
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save user data"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated successfully", "user": user})
	}
}

// GetUser looks up a profile by phone number.
// GET /api/users?phone_number=...
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := c.Query("phone_number")
		if phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Phone number is required"})
			return
		}

		var user models.User
		if err := db.Where("phone_number = ?", phone).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch user data"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// GetAllUsers lists customers for the back office.
// GET /api/admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
	}
}
