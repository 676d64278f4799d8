package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/avinashrajmsk/Ravi/controllers/admin"
	cartControllers "github.com/avinashrajmsk/Ravi/controllers/cart"
	contactControllers "github.com/avinashrajmsk/Ravi/controllers/contact"
	contentControllers "github.com/avinashrajmsk/Ravi/controllers/content"
	orderControllers "github.com/avinashrajmsk/Ravi/controllers/order"
	productcontroller "github.com/avinashrajmsk/Ravi/controllers/product"
	quickOrderControllers "github.com/avinashrajmsk/Ravi/controllers/quickorder"
	userControllers "github.com/avinashrajmsk/Ravi/controllers/user"
	"gorm.io/gorm"
)

// SetupStorefrontRoutes registers every endpoint the storefront calls
// without an admin session.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		// Catalog & content
		api.GET("/products", productcontroller.GetProducts(db))
		api.GET("/products/:id", productcontroller.GetProductByID(db))
		api.GET("/hero-images", contentControllers.GetHeroImages(db))
		api.GET("/settings", contentControllers.GetSettings(db))

		// Checkout & order tracking
		api.POST("/orders", orderControllers.CreateOrder(db))
		api.GET("/orders/user/:userId", orderControllers.GetUserOrders(db))

		// Server-persisted cart
		api.GET("/cart", cartControllers.GetCart(db))
		api.POST("/cart", cartControllers.AddCartItem(db))
		api.DELETE("/cart", cartControllers.RemoveCartItem(db))

		// Customer profiles (upserted on login/checkout)
		api.POST("/users", userControllers.SaveUser(db))
		api.GET("/users", userControllers.GetUser(db))

		// Leads
		api.POST("/quick-orders", quickOrderControllers.CreateQuickOrder(db))
		api.POST("/contact", contactControllers.Contact())
		api.POST("/bulk-order", contactControllers.BulkOrder())

		// Admin login surface stays public; everything it unlocks is
		// behind RequireAdminSession.
		api.POST("/admin/auth", adminController.AdminAuth(db))
		api.GET("/admin/auth", adminController.VerifyAdminToken(db))
		api.POST("/admin/login", adminController.AdminLogin(db))
		api.PUT("/admin/change-password", adminController.ChangeAdminPassword(db))
	}
}
