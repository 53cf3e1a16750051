package routes

import (
	"github.com/Fayets/NutriFA/controllers"
	"github.com/Fayets/NutriFA/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public routes
	r.GET("/", controllers.HealthCheck)
	r.HEAD("/", controllers.HealthCheckHead)
	r.POST("/register", controllers.Register)
	r.POST("/login", controllers.Login)

	// Everything below requires a Bearer token
	authorized := r.Group("/")
	authorized.Use(middlewares.AuthMiddleware())
	{
		authorized.GET("/me", controllers.Me)

		settings := authorized.Group("/settings")
		{
			settings.POST("/create", controllers.CreateSettings)
			settings.GET("/me", controllers.GetSettings)
			settings.PUT("/update", controllers.UpdateSettings)
		}

		foods := authorized.Group("/foods")
		{
			foods.POST("/create", controllers.CreateFood)
			foods.GET("/all", controllers.ListFoods)
			foods.GET("/search", controllers.SearchFoods)
			foods.GET("/barcode/:barcode", controllers.ResolveFoodByBarcode)
			foods.GET("/:id", controllers.GetFood)
			foods.PUT("/:id", controllers.UpdateFood)
			foods.DELETE("/:id", controllers.DeleteFood)
		}

		meals := authorized.Group("/meals")
		{
			meals.POST("/create", controllers.CreateMeal)
			meals.GET("/range", controllers.ListMealsRange)
			meals.DELETE("/:id", controllers.DeleteMeal)
		}

		dashboard := authorized.Group("/dashboard")
		{
			dashboard.GET("/today", controllers.DashboardToday)
			dashboard.GET("/range", controllers.DashboardRange)
		}
	}

	return r
}
