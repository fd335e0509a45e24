package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/auction-viewer/internal/services"
	"github.com/rxtech-lab/auction-viewer/internal/utils"
)

func NewGetAuctionStateTool(auctionService services.AuctionService) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("get_auction_state",
		mcp.WithDescription("Read the current winner, winning bid and all offers of the configured auction contract. Amounts are in ETH."),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := auctionService.Fetch(ctx)

		response := map[string]interface{}{
			"contract_address": auctionService.ContractAddress().Hex(),
			"winner_address":   result.WinnerAddress,
			"winning_amount":   result.WinningAmount,
			"min_next_bid":     utils.MinNextBid(result.WinningAmount),
			"offers":           result.Offers,
		}
		if result.Failed() {
			response["error"] = result.Error
		}

		responseJSON, err := json.Marshal(response)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error encoding auction state: %v", err)), nil
		}

		if result.Failed() {
			return mcp.NewToolResultError(fmt.Sprintf("Auction state unavailable: %s", string(responseJSON))), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Auction state: %s", string(responseJSON))), nil
	}

	return tool, handler
}
