package contentControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/avinashrajmsk/Ravi/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetSettings flattens the site_settings rows into one key/value map.
// GET /api/settings
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []models.SiteSetting
		if err := db.Order("setting_key").Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load settings"})
			return
		}

		settings := make(map[string]string, len(rows))
		for _, row := range rows {
			settings[row.SettingKey] = row.SettingValue
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
	}
}

// UpdateSettings upserts every key in the request body.
// PUT /api/settings
func UpdateSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings map[string]string
		if err := c.ShouldBindJSON(&settings); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		for key, value := range settings {
			row := models.SiteSetting{SettingKey: key, SettingValue: value, UpdatedAt: time.Now()}
			if err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "setting_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
			}).Create(&row).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update settings"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings updated successfully"})
	}
}
