package adminController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/avinashrajmsk/Ravi/models"
	"gorm.io/gorm"
)

// Per-row scheme: each admin row carries its own password, compared
// as-is. A row with no password set accepts any login once (first-run
// bootstrap) until change-password stores one.

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// AdminLogin authenticates against the admin's own row and rotates its
// session token.
// POST /api/admin/login
func AdminLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}
		if req.Username == "" {
			req.Username = adminUsername
		}

		var admin models.AdminAuth
		if err := db.Where("username = ?", req.Username).First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Admin account not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
			return
		}

		firstLogin := admin.PasswordHash == ""
		if !firstLogin && admin.PasswordHash != req.Password {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid password"})
			return
		}

		token := uuid.NewString()
		if err := db.Model(&admin).Update("session_token", token).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
			return
		}

		resp := gin.H{"success": true, "message": "Login successful", "token": token}
		if firstLogin {
			resp["first_login"] = true
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ChangeAdminPassword sets the password on first run, or verifies the
// current one before replacing it.
// PUT /api/admin/change-password
func ChangeAdminPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "New password is required"})
			return
		}

		var admin models.AdminAuth
		if err := db.Where("username = ?", adminUsername).First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Admin account not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to change password"})
			return
		}

		// First-time setup: no stored password, none supplied.
		if admin.PasswordHash == "" && req.CurrentPassword == "" {
			if err := db.Model(&admin).Update("password_hash", req.NewPassword).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to change password"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password set successfully"})
			return
		}

		if admin.PasswordHash != req.CurrentPassword {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Current password is incorrect"})
			return
		}

		if err := db.Model(&admin).Update("password_hash", req.NewPassword).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to change password"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully"})
	}
}
