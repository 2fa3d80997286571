package routes

import (
	"lavandaria-backend/config"
	"lavandaria-backend/controllers"
	"lavandaria-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public read surface: order tracking and receipt printing
	r.POST("/track", controllers.TrackOrder)
	r.GET("/track/:id", controllers.GetOrderDetails)
	r.GET("/orders/:id/receipt", controllers.PrintReceipt)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		shops := api.Group("/shops")
		{
			shops.POST("", controllers.CreateShop)
			shops.GET("", controllers.GetShops)
			shops.GET("/:id", controllers.GetShop)
			shops.PUT("/:id", controllers.UpdateShop)
			shops.DELETE("/:id", controllers.DeleteShop)
		}

		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		catalog := api.Group("/catalog-items")
		{
			catalog.POST("", controllers.CreateCatalogItem)
			catalog.GET("", controllers.GetCatalogItems)
			catalog.GET("/:id", controllers.GetCatalogItem)
			catalog.PUT("/:id", controllers.UpdateCatalogItem)
			catalog.DELETE("/:id", controllers.DeleteCatalogItem)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", controllers.CreateOrder)
			orders.GET("", controllers.GetOrders)
			orders.GET("/:id", controllers.GetOrder)
			orders.PUT("/:id", controllers.UpdateOrder)
			orders.DELETE("/:id", controllers.DeleteOrder)

			orders.POST("/:id/items", controllers.AddOrderItem)
			orders.PUT("/:id/items/:itemId", controllers.UpdateOrderItem)
			orders.DELETE("/:id/items/:itemId", controllers.DeleteOrderItem)
		}

		// Bulk SMS action; lives outside /orders so the static segment
		// does not collide with the :id wildcard
		api.POST("/notifications/ready", controllers.NotifyReadyOrders)

		employees := api.Group("/employees")
		{
			employees.GET("", controllers.GetEmployees)
			employees.POST("", controllers.AddEmployee)
			employees.PUT("/:id", controllers.UpdateEmployee)
			employees.DELETE("/:id", controllers.DeleteEmployee)
		}

		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
