package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file if present
	"github.com/rxtech-lab/auction-viewer/internal/api"
	"github.com/rxtech-lab/auction-viewer/internal/config"
	"github.com/rxtech-lab/auction-viewer/internal/server"
)

func configureAndStartServer(cfg *config.Config, port int) (*api.APIServer, int, error) {
	auctionService, err := server.InitializeServices(cfg)
	if err != nil {
		return nil, 0, err
	}

	apiServer, err := api.NewAPIServer(cfg, auctionService)
	if err != nil {
		return nil, 0, err
	}

	var portPtr *int
	if port != 0 {
		portPtr = &port
	}
	startedPort, err := apiServer.Start(portPtr)
	if err != nil {
		return nil, 0, err
	}

	return apiServer, startedPort, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if cfg.UsesDefaultSecret() {
		log.Println("WARNING: SECRET_KEY is not set, using the placeholder secret")
	}

	apiServer, port, err := configureAndStartServer(cfg, cfg.Port)
	if err != nil {
		log.Fatal("Failed to start API server:", err)
	}

	log.Printf("Auction page served on port %d for contract %s\n", port, cfg.ContractAddress)

	// Set up graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("\nShutting down server...")

	if err := apiServer.Shutdown(); err != nil {
		log.Printf("Error shutting down API server: %v", err)
	}

	log.Println("Server shut down successfully")
}
