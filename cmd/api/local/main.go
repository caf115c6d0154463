//go:build !lambda
// +build !lambda

package main

import (
	"log"
	"os"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/server"

	"github.com/gin-gonic/gin"
)

func main() {
	// InitializeHandlers loads .env and sets up the logger for STAGE
	server.InitializeHandlers()
	defer func() { _ = logger.Sync() }()

	r := gin.Default()
	server.InitializeRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
