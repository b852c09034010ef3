package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/trinimetalhead/standfindr-backend/internal/config"
	"github.com/trinimetalhead/standfindr-backend/internal/store"
)

// HealthResponse reports whether the backing store is reachable
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// HealthCheck reports healthy only when a configured database answers a
// no-op round trip. Never configured, unreachable and healthy are three
// distinct answers; none of them mutate any state.
func HealthCheck(c *gin.Context) {
	if config.DB == nil {
		resp := HealthResponse{
			Status:   "degraded",
			Database: "not_configured",
			Error:    "no database connection was established at startup",
		}
		if config.InitErr != nil {
			resp.Error = config.InitErr.Error()
		}
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	if err := store.Ping(config.DB); err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "degraded",
			Database: "unreachable",
			Error:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Database: "connected"})
}

// SeedDatabase wipes and reloads the demo fixture, answering with the ID of
// the seeded route.
func SeedDatabase(c *gin.Context) {
	route, err := store.InsertSeedData(config.DB)
	if err != nil {
		respondStoreError(c, err, "could not seed database")
		return
	}

	logrus.WithField("route_id", route.ID).Info("seed data inserted")
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Sample data inserted successfully",
		"route_id": route.ID,
	})
}

// ResetDatabase deletes every fare, landmark and route.
func ResetDatabase(c *gin.Context) {
	if err := store.ResetAll(config.DB); err != nil {
		respondStoreError(c, err, "could not reset database")
		return
	}

	logrus.Info("all route data deleted")
	c.JSON(http.StatusOK, gin.H{"message": "All data deleted successfully"})
}

// Root answers a bare liveness greeting, handy when poking the deployment
// from a browser.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "StandFindr backend is running")
}
