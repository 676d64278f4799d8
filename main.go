package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/avinashrajmsk/Ravi/models"
	"github.com/avinashrajmsk/Ravi/routes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting Satyam Gold API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.CartHistory{},
		&models.Order{},
		&models.QuickOrder{},
		&models.User{},
		&models.HeroImage{},
		&models.SiteSetting{},
		&models.AdminAuth{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the admin row so the first-run login flow has something to
	// attach a session to.
	seedAdminRow(db)

	// Gin setup
	r := gin.Default()

	// CORS settings: the storefront and admin panel are served from
	// arbitrary origins.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// seedAdminRow inserts the "admin" row if missing. No password is set
// here; the per-row login flow bootstraps one on first use.
func seedAdminRow(db *gorm.DB) {
	var count int64
	db.Model(&models.AdminAuth{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		if err := db.Create(&models.AdminAuth{Username: "admin"}).Error; err != nil {
			log.Printf("❌ Failed to seed admin row: %v", err)
		} else {
			log.Println("✅ Admin row ready")
		}
	}
}
