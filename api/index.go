package handler

import (
	"log"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/rxtech-lab/auction-viewer/internal/api"
	"github.com/rxtech-lab/auction-viewer/internal/config"
	"github.com/rxtech-lab/auction-viewer/internal/server"
)

var (
	apiServer *api.APIServer
	initOnce  sync.Once
	initErr   error
)

// Handler is the main Vercel function handler
func Handler(w http.ResponseWriter, r *http.Request) {
	// Initialize the API server only once
	initOnce.Do(func() {
		initErr = initializeAPIServer()
	})
	if initErr != nil {
		log.Printf("Failed to initialize API server: %v", initErr)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	adaptor.FiberApp(apiServer.GetFiberApp())(w, r)
}

// initializeAPIServer builds the same page server the web binary runs
func initializeAPIServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	auctionService, err := server.InitializeServices(cfg)
	if err != nil {
		return err
	}

	apiServer, err = api.NewAPIServer(cfg, auctionService)
	return err
}
