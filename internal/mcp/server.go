package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/auction-viewer/internal/services"
	"github.com/rxtech-lab/auction-viewer/internal/tools"
)

type MCPServer struct {
	server *server.MCPServer
}

func NewMCPServer(auctionService services.AuctionService) *MCPServer {
	mcpServer := &MCPServer{}
	mcpServer.InitializeTools(auctionService)
	return mcpServer
}

func (s *MCPServer) InitializeTools(auctionService services.AuctionService) {
	srv := server.NewMCPServer(
		"Auction Viewer MCP Server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Read-only Information Tools
	getAuctionStateTool, getAuctionStateHandler := tools.NewGetAuctionStateTool(auctionService)
	srv.AddTool(getAuctionStateTool, getAuctionStateHandler)

	s.server = srv
}

// StartStdioServer serves MCP over stdin/stdout until the input closes
func (s *MCPServer) StartStdioServer() error {
	return server.ServeStdio(s.server)
}

func (s *MCPServer) GetServer() *server.MCPServer {
	return s.server
}
