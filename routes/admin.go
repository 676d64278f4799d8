package routes

import (
	"github.com/gin-gonic/gin"
	contentControllers "github.com/avinashrajmsk/Ravi/controllers/content"
	orderControllers "github.com/avinashrajmsk/Ravi/controllers/order"
	productcontroller "github.com/avinashrajmsk/Ravi/controllers/product"
	quickOrderControllers "github.com/avinashrajmsk/Ravi/controllers/quickorder"
	userControllers "github.com/avinashrajmsk/Ravi/controllers/user"
	"github.com/avinashrajmsk/Ravi/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the back-office endpoints behind the
// admin session middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/api")
	admin.Use(middleware.RequireAdminSession(db))
	{
		// Catalog management
		admin.POST("/products", productcontroller.CreateProduct(db))
		admin.PUT("/products/:id", productcontroller.UpdateProduct(db))
		admin.DELETE("/products/:id", productcontroller.DeleteProduct(db))
		admin.GET("/products/export-excel", productcontroller.ExportProductsToExcel(db))

		// Order management
		admin.GET("/orders", orderControllers.GetOrders(db))
		admin.GET("/orders/:id", orderControllers.GetOrderByID(db))
		admin.PUT("/orders/:id/status", orderControllers.UpdateOrderStatus(db))
		admin.DELETE("/orders/:id", orderControllers.DeleteOrder(db))
		admin.GET("/orders/ws", orderControllers.OrderWebSocket)

		// Storefront content
		admin.POST("/hero-images", contentControllers.AddHeroImage(db))
		admin.PUT("/hero-images/:id", contentControllers.UpdateHeroImage(db))
		admin.DELETE("/hero-images/:id", contentControllers.DeleteHeroImage(db))
		admin.PUT("/settings", contentControllers.UpdateSettings(db))

		// Leads & customers
		admin.GET("/quick-orders", quickOrderControllers.GetQuickOrders(db))
		admin.PUT("/quick-orders", quickOrderControllers.UpdateQuickOrder(db))
		admin.GET("/admin/users", userControllers.GetAllUsers(db))
	}
}
