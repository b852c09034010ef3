package store

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/trinimetalhead/standfindr-backend/internal/models"
)

// The store package is the single query layer over the route schema. Every
// function takes the database handle explicitly and short-circuits with
// ErrDatabaseNotConfigured when it is nil, so a missing connection degrades
// each call instead of taking down the process.

// ListRoutes returns every route with its fares and landmarks preloaded,
// in storage order.
func ListRoutes(db *gorm.DB) ([]models.Route, error) {
	if db == nil {
		return nil, ErrDatabaseNotConfigured
	}

	var routes []models.Route
	if err := db.Preload("Fares").Preload("Landmarks").Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

// GetRoute fetches a single route by ID with its fares and landmarks.
// Returns gorm.ErrRecordNotFound when no such route exists.
func GetRoute(db *gorm.DB, id uint) (*models.Route, error) {
	if db == nil {
		return nil, ErrDatabaseNotConfigured
	}

	var route models.Route
	if err := db.Preload("Fares").Preload("Landmarks").First(&route, id).Error; err != nil {
		return nil, err
	}
	return &route, nil
}

// SearchRoutes filters routes by start and end location using partial,
// case-insensitive matching. An empty input leaves its column unfiltered,
// so two empty inputs return every route; non-empty inputs combine with AND.
func SearchRoutes(db *gorm.DB, start, end string) ([]models.Route, error) {
	if db == nil {
		return nil, ErrDatabaseNotConfigured
	}

	// LOWER + LIKE instead of ILIKE so the same query runs on Postgres in
	// production and SQLite in tests.
	q := db.Preload("Fares").Preload("Landmarks")
	if s := strings.TrimSpace(start); s != "" {
		q = q.Where("LOWER(start_location) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if e := strings.TrimSpace(end); e != "" {
		q = q.Where("LOWER(end_location) LIKE ?", "%"+strings.ToLower(e)+"%")
	}

	var routes []models.Route
	if err := q.Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

// CreateRoute inserts a route together with any nested fares and landmarks
// in one transaction; a failed insert leaves nothing behind. GORM backfills
// the generated IDs on the passed-in value.
func CreateRoute(db *gorm.DB, route *models.Route) error {
	if db == nil {
		return ErrDatabaseNotConfigured
	}

	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Create(route).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// Ping runs a no-op round trip against the store so callers can tell a
// reachable database from a dead one. It never touches any rows.
func Ping(db *gorm.DB) error {
	if db == nil {
		return ErrDatabaseNotConfigured
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
