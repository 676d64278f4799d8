package contactControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type ContactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Message      string `json:"message"`
	Requirements string `json:"requirements"`
}

type BulkOrderRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProductName  string `json:"product_name"`
	Quantity     string `json:"quantity"`
	Requirements string `json:"requirements"`
}

// Contact logs a contact-form submission and acknowledges it. Sending
// mail is handled off-platform.
// POST /api/contact
func Contact() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		message := req.Message
		if message == "" {
			message = req.Requirements
		}
		log.Printf("📩 Contact form: name=%q email=%q phone=%q message=%q at=%s",
			req.Name, req.Email, req.Phone, message, time.Now().Format(time.RFC3339))

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Thank you for your message. We will contact you soon!",
		})
	}
}

// BulkOrder logs a bulk-order pricing request and acknowledges it.
// POST /api/bulk-order
func BulkOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		log.Printf("📦 Bulk order request: name=%q phone=%q product=%q quantity=%q at=%s",
			req.Name, req.Phone, req.ProductName, req.Quantity, time.Now().Format(time.RFC3339))

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Thank you for your bulk order request. We will contact you with pricing and availability.",
		})
	}
}
