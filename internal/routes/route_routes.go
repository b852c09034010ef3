package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/trinimetalhead/standfindr-backend/internal/controllers"
)

// RouteRoutes wires the route-data endpoints under /api.
func RouteRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/routes", controllers.ListRoutes)
		api.GET("/routes/:id", controllers.GetRoute)
		api.POST("/routes", controllers.CreateRoute)
		api.GET("/search", controllers.SearchRoutes)
	}
}
