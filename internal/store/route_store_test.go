package store

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/trinimetalhead/standfindr-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to unwrap sql.DB: %v", err)
	}
	// Every :memory: connection is its own database, so keep the pool at one.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Route{}, &models.Fare{}, &models.Landmark{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func TestCreateRouteRoundTrip(t *testing.T) {
	db := newTestDB(t)

	img := "https://example.com/arima-dial.jpg"
	route := models.Route{
		StartLocation: "Arima",
		EndLocation:   "Port of Spain",
		VehicleType:   "Red Band Maxi",
		Fares: []models.Fare{
			{EstimatedFare: decimal.RequireFromString("12.50")},
		},
		Landmarks: []models.Landmark{
			{Description: "Arima Dial taxi stand", ImageURL: &img},
			{Description: "City Gate drop-off"},
		},
	}

	if err := CreateRoute(db, &route); err != nil {
		t.Fatalf("CreateRoute returned error: %v", err)
	}
	if route.ID == 0 {
		t.Fatal("expected route ID to be assigned")
	}

	got, err := GetRoute(db, route.ID)
	if err != nil {
		t.Fatalf("GetRoute returned error: %v", err)
	}

	if got.StartLocation != "Arima" || got.EndLocation != "Port of Spain" || got.VehicleType != "Red Band Maxi" {
		t.Fatalf("unexpected route fields: %+v", got)
	}
	if len(got.Fares) != 1 {
		t.Fatalf("expected one fare, got %d", len(got.Fares))
	}
	if !got.Fares[0].EstimatedFare.Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("expected fare 12.50, got %s", got.Fares[0].EstimatedFare)
	}
	if len(got.Landmarks) != 2 {
		t.Fatalf("expected two landmarks, got %d", len(got.Landmarks))
	}
	if got.Landmarks[0].ImageURL == nil || *got.Landmarks[0].ImageURL != img {
		t.Fatalf("expected first landmark image %q, got %v", img, got.Landmarks[0].ImageURL)
	}
	if got.Landmarks[1].ImageURL != nil {
		t.Fatalf("expected second landmark image to be absent, got %q", *got.Landmarks[1].ImageURL)
	}
}

func TestGetRouteNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := GetRoute(db, 42)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestSearchRoutesSubstringCaseInsensitive(t *testing.T) {
	db := newTestDB(t)

	if _, err := InsertSeedData(db); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// Lowercase fragments of "Sangre Grande" and "Port of Spain"
	routes, err := SearchRoutes(db, "sangre", "port")
	if err != nil {
		t.Fatalf("SearchRoutes returned error: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("expected one match, got %d", len(routes))
	}
	if routes[0].StartLocation != "Sangre Grande" || routes[0].EndLocation != "Port of Spain" {
		t.Fatalf("unexpected match: %+v", routes[0])
	}
	if len(routes[0].Fares) != 1 || len(routes[0].Landmarks) != 2 {
		t.Fatalf("expected associations preloaded, got %d fares and %d landmarks",
			len(routes[0].Fares), len(routes[0].Landmarks))
	}

	// Uppercase fragments must match just the same
	routes, err = SearchRoutes(db, "SANGRE", "SPAIN")
	if err != nil {
		t.Fatalf("SearchRoutes returned error: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("expected one match for uppercase fragments, got %d", len(routes))
	}

	// Both filters combine with AND, so a wrong destination excludes the route
	routes, err = SearchRoutes(db, "sangre", "chaguanas")
	if err != nil {
		t.Fatalf("SearchRoutes returned error: %v", err)
	}
	if len(routes) != 0 {
		t.Fatalf("expected no matches, got %d", len(routes))
	}
}

func TestSearchRoutesEmptyInputs(t *testing.T) {
	db := newTestDB(t)

	first := models.Route{StartLocation: "Sangre Grande", EndLocation: "Port of Spain", VehicleType: "Red Band Maxi"}
	second := models.Route{StartLocation: "San Fernando", EndLocation: "Chaguanas", VehicleType: "Yellow Band Maxi"}
	if err := CreateRoute(db, &first); err != nil {
		t.Fatalf("CreateRoute returned error: %v", err)
	}
	if err := CreateRoute(db, &second); err != nil {
		t.Fatalf("CreateRoute returned error: %v", err)
	}

	// Two empty inputs leave the listing unfiltered
	routes, err := SearchRoutes(db, "", "")
	if err != nil {
		t.Fatalf("SearchRoutes returned error: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("expected both routes, got %d", len(routes))
	}

	// Whitespace-only inputs count as empty
	routes, err = SearchRoutes(db, "   ", " ")
	if err != nil {
		t.Fatalf("SearchRoutes returned error: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("expected both routes for blank inputs, got %d", len(routes))
	}

	// One empty input filters only the other column
	routes, err = SearchRoutes(db, "", "spain")
	if err != nil {
		t.Fatalf("SearchRoutes returned error: %v", err)
	}
	if len(routes) != 1 || routes[0].EndLocation != "Port of Spain" {
		t.Fatalf("expected only the Port of Spain route, got %+v", routes)
	}
}

func TestListRoutesReturnsStoredRoutes(t *testing.T) {
	db := newTestDB(t)

	routes, err := ListRoutes(db)
	if err != nil {
		t.Fatalf("ListRoutes returned error: %v", err)
	}
	if len(routes) != 0 {
		t.Fatalf("expected empty store, got %d routes", len(routes))
	}

	if _, err := InsertSeedData(db); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	routes, err = ListRoutes(db)
	if err != nil {
		t.Fatalf("ListRoutes returned error: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("expected one route, got %d", len(routes))
	}
	if len(routes[0].Fares) != 1 || len(routes[0].Landmarks) != 2 {
		t.Fatalf("expected nested rows preloaded, got %d fares and %d landmarks",
			len(routes[0].Fares), len(routes[0].Landmarks))
	}
}

func TestStoreOperationsWithoutDatabase(t *testing.T) {
	if _, err := ListRoutes(nil); !errors.Is(err, ErrDatabaseNotConfigured) {
		t.Fatalf("ListRoutes: expected ErrDatabaseNotConfigured, got %v", err)
	}
	if _, err := GetRoute(nil, 1); !errors.Is(err, ErrDatabaseNotConfigured) {
		t.Fatalf("GetRoute: expected ErrDatabaseNotConfigured, got %v", err)
	}
	if _, err := SearchRoutes(nil, "a", "b"); !errors.Is(err, ErrDatabaseNotConfigured) {
		t.Fatalf("SearchRoutes: expected ErrDatabaseNotConfigured, got %v", err)
	}
	if err := CreateRoute(nil, &models.Route{}); !errors.Is(err, ErrDatabaseNotConfigured) {
		t.Fatalf("CreateRoute: expected ErrDatabaseNotConfigured, got %v", err)
	}
	if _, err := InsertSeedData(nil); !errors.Is(err, ErrDatabaseNotConfigured) {
		t.Fatalf("InsertSeedData: expected ErrDatabaseNotConfigured, got %v", err)
	}
	if err := ResetAll(nil); !errors.Is(err, ErrDatabaseNotConfigured) {
		t.Fatalf("ResetAll: expected ErrDatabaseNotConfigured, got %v", err)
	}
	if err := Ping(nil); !errors.Is(err, ErrDatabaseNotConfigured) {
		t.Fatalf("Ping: expected ErrDatabaseNotConfigured, got %v", err)
	}
}

func TestPing(t *testing.T) {
	db := newTestDB(t)

	if err := Ping(db); err != nil {
		t.Fatalf("expected ping to succeed, got %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to unwrap sql.DB: %v", err)
	}
	sqlDB.Close()

	if err := Ping(db); err == nil {
		t.Fatal("expected ping to fail once the connection is closed")
	}
}
