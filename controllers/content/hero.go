package contentControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/avinashrajmsk/Ravi/models"
	"gorm.io/gorm"
)

type HeroImageRequest struct {
	ImageURL   string `json:"image_url" binding:"required"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
	Active     *bool  `json:"active"`
	SortOrder  int    `json:"sort_order"`
}

type UpdateHeroImageRequest struct {
	ImageURL   *string `json:"image_url"`
	Title      *string `json:"title"`
	Subtitle   *string `json:"subtitle"`
	ButtonText *string `json:"button_text"`
	ButtonLink *string `json:"button_link"`
	Active     *bool   `json:"active"`
	SortOrder  *int    `json:"sort_order"`
}

// GetHeroImages returns the active carousel slides in display order.
// GET /api/hero-images
func GetHeroImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var images []models.HeroImage
		if err := db.
			Where("active = ?", true).
			Order("sort_order ASC, created_at DESC").
			Find(&images).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load hero images"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "images": images})
	}
}

// AddHeroImage creates a carousel slide.
// POST /api/hero-images
func AddHeroImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req HeroImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image URL is required"})
			return
		}

		image := models.HeroImage{
			ImageURL:   req.ImageURL,
			Title:      req.Title,
			Subtitle:   req.Subtitle,
			ButtonText: req.ButtonText,
			ButtonLink: req.ButtonLink,
			Active:     req.Active == nil || *req.Active,
			SortOrder:  req.SortOrder,
		}
		if err := db.Create(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add hero image"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Hero image added successfully",
			"image_id": image.ID,
		})
	}
}

// UpdateHeroImage partially updates a slide.
// PUT /api/hero-images/:id
func UpdateHeroImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var image models.HeroImage
		if err := db.First(&image, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Hero image not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update hero image"})
			return
		}

		var req UpdateHeroImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.ImageURL != nil {
			updates["image_url"] = *req.ImageURL
		}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Subtitle != nil {
			updates["subtitle"] = *req.Subtitle
		}
		if req.ButtonText != nil {
			updates["button_text"] = *req.ButtonText
		}
		if req.ButtonLink != nil {
			updates["button_link"] = *req.ButtonLink
		}
		if req.Active != nil {
			updates["active"] = *req.Active
		}
		if req.SortOrder != nil {
			updates["sort_order"] = *req.SortOrder
		}

		if len(updates) > 0 {
			if err := db.Model(&image).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update hero image"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Hero image updated successfully"})
	}
}

// DeleteHeroImage removes a slide; unknown ids get a 404.
// DELETE /api/hero-images/:id
func DeleteHeroImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Hero image ID is required"})
			return
		}

		result := db.Delete(&models.HeroImage{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete hero image"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Hero image not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Hero image deleted successfully"})
	}
}
