package api

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rxtech-lab/auction-viewer/internal/assets"
	"github.com/rxtech-lab/auction-viewer/internal/config"
	"github.com/rxtech-lab/auction-viewer/internal/services"
)

type APIServer struct {
	app            *fiber.App
	config         *config.Config
	auctionService services.AuctionService
	indexTemplate  *template.Template
	port           int
}

func NewAPIServer(cfg *config.Config, auctionService services.AuctionService) (*APIServer, error) {
	indexTemplate, err := template.New("index").Funcs(GetTemplateFuncs()).Parse(string(assets.IndexHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Add middleware
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: cookieKey(cfg.SecretKey),
	}))

	server := &APIServer{
		app:            app,
		config:         cfg,
		auctionService: auctionService,
		indexTemplate:  indexTemplate,
	}
	server.SetupRoutes()
	return server, nil
}

func (s *APIServer) SetupRoutes() {
	s.app.Get("/", s.handleIndexPage)
}

// Start starts the server on the given port, or on a random available port when port is nil
func (s *APIServer) Start(port *int) (int, error) {
	addr := ":0"
	if port != nil {
		addr = fmt.Sprintf(":%d", *port)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.port = listener.Addr().(*net.TCPAddr).Port

	go func() {
		if err := s.app.Listener(listener); err != nil {
			log.Printf("Error starting API server: %v\n", err)
		}
	}()

	return s.port, nil
}

func (s *APIServer) Shutdown() error {
	return s.app.Shutdown()
}

func (s *APIServer) GetPort() int {
	return s.port
}

// GetFiberApp exposes the underlying app for adaptors
func (s *APIServer) GetFiberApp() *fiber.App {
	return s.app
}

// cookieKey derives a 32-byte AES key from the configured secret
func cookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}
