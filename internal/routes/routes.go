package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// SetupRouter assembles the gin engine: panic recovery, structured request
// logging, then every endpoint group. The caller decides how to serve it.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Request logging middleware
	r.Use(ginlogger.SetLogger())

	SystemRoutes(r)
	RouteRoutes(r)

	return r
}
