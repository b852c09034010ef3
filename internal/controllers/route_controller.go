package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/trinimetalhead/standfindr-backend/internal/config"
	"github.com/trinimetalhead/standfindr-backend/internal/models"
	"github.com/trinimetalhead/standfindr-backend/internal/store"
)

// RouteResponse struct for API output
// This mirrors models.Route but renders fares as plain numbers, so the
// numeric column never leaks out as a quoted string
type RouteResponse struct {
	ID            uint               `json:"id"`
	StartLocation string             `json:"start_location"`
	EndLocation   string             `json:"end_location"`
	VehicleType   string             `json:"vehicle_type"`
	Fares         []FareResponse     `json:"fares"`
	Landmarks     []LandmarkResponse `json:"landmarks"`
}

type FareResponse struct {
	ID            uint    `json:"id"`
	EstimatedFare float64 `json:"estimated_fare"`
}

type LandmarkResponse struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// toRouteResponse converts a models.Route to a RouteResponse. Association
// slices start non-nil so empty collections serialize as [] rather than null.
func toRouteResponse(route models.Route) RouteResponse {
	fares := make([]FareResponse, 0, len(route.Fares))
	for _, f := range route.Fares {
		fares = append(fares, FareResponse{
			ID:            f.ID,
			EstimatedFare: f.EstimatedFare.InexactFloat64(),
		})
	}

	landmarks := make([]LandmarkResponse, 0, len(route.Landmarks))
	for _, l := range route.Landmarks {
		landmarks = append(landmarks, LandmarkResponse{
			ID:          l.ID,
			Description: l.Description,
			ImageURL:    l.ImageURL,
		})
	}

	return RouteResponse{
		ID:            route.ID,
		StartLocation: route.StartLocation,
		EndLocation:   route.EndLocation,
		VehicleType:   route.VehicleType,
		Fares:         fares,
		Landmarks:     landmarks,
	}
}

func toRouteResponses(routes []models.Route) []RouteResponse {
	out := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, toRouteResponse(r))
	}
	return out
}

// respondStoreError maps store failures onto the API error contract:
// 404 for an absent row, 503 when the database is missing or unreachable.
// Raw driver errors are logged, never sent to the caller.
func respondStoreError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	case errors.Is(err, store.ErrDatabaseNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
	default:
		logrus.WithError(err).Error(msg)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msg})
	}
}

// ListRoutes returns every stored route in full nested form.
func ListRoutes(c *gin.Context) {
	routes, err := store.ListRoutes(config.DB)
	if err != nil {
		respondStoreError(c, err, "could not list routes")
		return
	}

	c.JSON(http.StatusOK, toRouteResponses(routes))
}

// GetRoute returns a single route with its fares and landmarks.
func GetRoute(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route ID"})
		return
	}

	route, err := store.GetRoute(config.DB, uint(id))
	if err != nil {
		respondStoreError(c, err, "could not fetch route")
		return
	}

	c.JSON(http.StatusOK, toRouteResponse(*route))
}

// SearchRoutes filters routes by the start and end query params using
// partial, case-insensitive matching. An empty param leaves that side
// unfiltered, so an empty query lists everything.
func SearchRoutes(c *gin.Context) {
	start := strings.TrimSpace(c.Query("start"))
	end := strings.TrimSpace(c.Query("end"))

	routes, err := store.SearchRoutes(config.DB, start, end)
	if err != nil {
		respondStoreError(c, err, "could not search routes")
		return
	}

	c.JSON(http.StatusOK, toRouteResponses(routes))
}

// CreateRoute inserts a new route with optional nested fares and landmarks.
func CreateRoute(c *gin.Context) {
	var input struct {
		StartLocation string `json:"start_location" binding:"required"`
		EndLocation   string `json:"end_location" binding:"required"`
		VehicleType   string `json:"vehicle_type" binding:"required"`
		Fares         []struct {
			EstimatedFare float64 `json:"estimated_fare"`
		} `json:"fares"`
		Landmarks []struct {
			Description string  `json:"description" binding:"required"`
			ImageURL    *string `json:"image_url"`
		} `json:"landmarks"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	route := models.Route{
		StartLocation: input.StartLocation,
		EndLocation:   input.EndLocation,
		VehicleType:   input.VehicleType,
	}
	for _, f := range input.Fares {
		route.Fares = append(route.Fares, models.Fare{
			EstimatedFare: decimal.NewFromFloat(f.EstimatedFare),
		})
	}
	for _, l := range input.Landmarks {
		route.Landmarks = append(route.Landmarks, models.Landmark{
			Description: l.Description,
			ImageURL:    l.ImageURL,
		})
	}

	if err := store.CreateRoute(config.DB, &route); err != nil {
		respondStoreError(c, err, "could not create route")
		return
	}

	c.JSON(http.StatusCreated, toRouteResponse(route))
}
