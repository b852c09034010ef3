package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trinimetalhead/standfindr-backend/internal/controllers"
)

// SystemRoutes wires the greeting plus the health, seed and reset endpoints.
// Health stays reachable even when the database never came up.
func SystemRoutes(r *gin.Engine) {
	r.GET("/", controllers.Root)

	api := r.Group("/api")
	{
		api.GET("/health", controllers.HealthCheck)
		api.POST("/seed", controllers.SeedDatabase)
		api.POST("/reset", controllers.ResetDatabase)
	}
}
