package main

import (
	"log"
	"net/http"
	"os"

	"github.com/trinimetalhead/standfindr-backend/internal/config"
	"github.com/trinimetalhead/standfindr-backend/internal/logger"
	"github.com/trinimetalhead/standfindr-backend/internal/middleware"
	"github.com/trinimetalhead/standfindr-backend/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database. A failure leaves the API degraded instead
	// of dead, so /api/health can still say what went wrong.
	config.InitDB()

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 StandFindr backend running at :%s", port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+port, handler))
}
