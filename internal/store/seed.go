package store

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/trinimetalhead/standfindr-backend/internal/models"
)

// seedStandImage is the demo landmark photo served by the original deployment.
var seedStandImage = "http://localhost:5000/static/landmark.jpg"

// seedRoute builds the demo fixture: the Sangre Grande to Port of Spain maxi
// route with its two boarding landmarks and the current fare. Deterministic,
// so demos and tests always see the same rows.
func seedRoute() models.Route {
	return models.Route{
		StartLocation: "Sangre Grande",
		EndLocation:   "Port of Spain",
		VehicleType:   "Red Band Maxi",
		Fares: []models.Fare{
			{EstimatedFare: decimal.RequireFromString("15.00")},
		},
		Landmarks: []models.Landmark{
			{
				Description: "Sangre Grande Maxi Stand (opposite the catholic church)",
				ImageURL:    &seedStandImage,
			},
			{
				Description: "Port of Spain drop-off at City Gate",
			},
		},
	}
}

// InsertSeedData wipes all route data and loads the demo fixture inside a
// single transaction, so a failed run leaves the store untouched. Wiping
// first makes repeat runs land on exactly the seeded rows, never duplicates.
// Returns the inserted route with generated IDs filled in.
func InsertSeedData(db *gorm.DB) (*models.Route, error) {
	if db == nil {
		return nil, ErrDatabaseNotConfigured
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := wipeAll(tx); err != nil {
		tx.Rollback()
		return nil, err
	}

	route := seedRoute()
	if err := tx.Create(&route).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &route, nil
}

// ResetAll deletes every fare, landmark and route and commits.
func ResetAll(db *gorm.DB) error {
	if db == nil {
		return ErrDatabaseNotConfigured
	}

	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := wipeAll(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// wipeAll empties the three tables inside the caller's transaction, children
// before parents so the foreign keys stay satisfied throughout.
func wipeAll(tx *gorm.DB) error {
	if err := tx.Where("1 = 1").Delete(&models.Fare{}).Error; err != nil {
		return err
	}
	if err := tx.Where("1 = 1").Delete(&models.Landmark{}).Error; err != nil {
		return err
	}
	return tx.Where("1 = 1").Delete(&models.Route{}).Error
}
