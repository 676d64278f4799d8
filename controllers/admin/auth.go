package adminController

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/avinashrajmsk/Ravi/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Legacy single-admin scheme: one fixed credential pair checked by
// equality, issuing an opaque token stored under the "admin" username.
// Validity is a 24-hour recency window on the row, nothing more.

const adminUsername = "admin"

type AdminAuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func adminCredentials() (string, string) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@satyamgold.in"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "satyamgold"
	}
	return email, password
}

func generateSessionToken() string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return fmt.Sprintf("admin_%d", time.Now().UnixMilli())
	}
	return fmt.Sprintf("admin_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(suffix))
}

// AdminAuth checks the fixed credentials and issues a session token.
// POST /api/admin/auth
func AdminAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminAuthRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
			return
		}

		email, password := adminCredentials()
		if req.Email != email || req.Password != password {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}

		token := generateSessionToken()
		row := models.AdminAuth{Username: adminUsername, SessionToken: token, UpdatedAt: time.Now()}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"session_token", "updated_at"}),
		}).Create(&row).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Authentication failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful", "token": token})
	}
}

// VerifyAdminToken reports whether the presented bearer token belongs
// to a row refreshed within the last 24 hours.
// GET /api/admin/auth
func VerifyAdminToken(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "No token provided"})
			return
		}

		if !TokenIsFresh(db, token) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Token valid"})
	}
}

// TokenIsFresh is the single freshness check shared by the verify
// endpoint and the admin route middleware.
func TokenIsFresh(db *gorm.DB, token string) bool {
	var count int64
	cutoff := time.Now().Add(-24 * time.Hour)
	db.Model(&models.AdminAuth{}).
		Where("session_token = ? AND updated_at > ?", token, cutoff).
		Count(&count)
	return count > 0
}
