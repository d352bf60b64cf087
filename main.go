package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fatalview/internal/config"
	"fatalview/internal/dataset"
	"fatalview/internal/ops"
	"fatalview/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// One-time startup load: read the six sources, merge, recode. Any
	// failure here is fatal; a partial dashboard is never served.
	table, loadStats, err := dataset.Load(context.Background(), appConfig.Data)
	if err != nil {
		log.Fatalf("Failed to load traffic dataset: %v", err)
	}

	// Ops sidecar (health, readiness, pprof) on its own port. The table
	// is fully built before the servers start, so readiness is constant.
	opsServer := ops.NewServer(func() bool { return table != nil }, appConfig.Ops.PprofEnabled)
	go func() {
		if err := opsServer.Start(":" + appConfig.Ops.Port); err != nil {
			log.Printf("Ops server failed: %v", err)
		}
	}()

	// Initialize web server
	gin.SetMode(appConfig.Server.GinMode)
	server, err := ui.NewServer(table, loadStats)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Printf("Starting fatalview server on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
