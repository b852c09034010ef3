package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/trinimetalhead/standfindr-backend/internal/config"
	"github.com/trinimetalhead/standfindr-backend/internal/store"
)

// Command seed loads the demo route fixture into the configured database,
// or wipes all route data when run with -reset.
func main() {
	reset := flag.Bool("reset", false, "delete all route data without reseeding")
	flag.Parse()

	config.InitDB()
	if config.DB == nil {
		log.Fatalf("database not configured: %v", config.InitErr)
	}

	if *reset {
		if err := store.ResetAll(config.DB); err != nil {
			log.Fatalf("reset failed: %v", err)
		}
		fmt.Println("All data deleted successfully!")
		return
	}

	route, err := store.InsertSeedData(config.DB)
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	fmt.Println("✅ Sample data inserted successfully!")
	fmt.Printf("Route: %s -> %s (%s)\n", route.StartLocation, route.EndLocation, route.VehicleType)
	for _, l := range route.Landmarks {
		fmt.Printf("Landmark: %s\n", l.Description)
	}
	for _, f := range route.Fares {
		fmt.Printf("Fare: $%s\n", f.EstimatedFare.StringFixed(2))
	}
}
