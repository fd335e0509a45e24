package main

import (
	"flag"
	"io"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file if present
	"github.com/rxtech-lab/auction-viewer/internal/config"
	"github.com/rxtech-lab/auction-viewer/internal/mcp"
	"github.com/rxtech-lab/auction-viewer/internal/server"
)

// Build information (set via ldflags)
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)

func main() {
	// Command line flags
	var showVersion = flag.Bool("version", false, "Show version information")
	var showHelp = flag.Bool("help", false, "Show help information")
	var enableLog = flag.Bool("log", false, "Enable logging output")
	flag.Parse()

	// stdout carries the MCP protocol, so logging is off unless asked for
	if !*enableLog {
		log.SetOutput(io.Discard)
	}

	if *showVersion {
		log.SetOutput(os.Stderr)
		log.Printf("Auction Viewer MCP Server\n")
		log.Printf("Version: %s\n", Version)
		log.Printf("Commit: %s\n", CommitHash)
		log.Printf("Built: %s\n", BuildTime)
		return
	}

	if *showHelp {
		log.SetOutput(os.Stderr)
		log.Printf("Auction Viewer MCP Server\n\n")
		log.Printf("Usage: %s [options]\n\n", os.Args[0])
		log.Printf("Options:\n")
		log.Printf("  --version    Show version information\n")
		log.Printf("  --help       Show this help message\n")
		log.Printf("  --log        Enable logging output\n\n")
		log.Printf("Description:\n")
		log.Printf("  Exposes the get_auction_state tool for the contract in CONTRACT_ADDRESS,\n")
		log.Printf("  read through the node in RPC_URL.\n")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal("Failed to load configuration:", err)
	}

	auctionService, err := server.InitializeServices(cfg)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal("Failed to initialize auction service:", err)
	}

	mcpServer := mcp.NewMCPServer(auctionService)
	if err := mcpServer.StartStdioServer(); err != nil {
		log.SetOutput(os.Stderr)
		log.SetFlags(0)
		log.Fatal("Failed to start MCP server:", err)
	}
}
