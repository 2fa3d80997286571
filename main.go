package main

import (
	"fmt"
	"log"
	"os"

	"lavandaria-backend/config"
	"lavandaria-backend/models"
	"lavandaria-backend/routes"
	"lavandaria-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Group{},
		&models.User{},
		&models.Shop{},
		&models.Employee{},
		&models.CatalogItem{},
		&models.Service{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	)

	// Role groups are provisioned once at startup, not on every save
	if err := services.EnsureRoleGroups(config.DB); err != nil {
		log.Fatalf("Failed to provision role groups: %v", err)
	}
}

func main() {
	// Optional scheduled re-dispatch of ready-order notifications
	if spec := os.Getenv("NOTIFY_CRON"); spec != "" {
		notifier := services.NewNotifier(config.DB)
		if err := notifier.StartScheduler(spec); err != nil {
			log.Fatalf("Failed to start notification scheduler: %v", err)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
