package api

import (
	"bytes"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/rxtech-lab/auction-viewer/internal/models"
	"github.com/rxtech-lab/auction-viewer/internal/utils"
	"github.com/shopspring/decimal"
)

type IndexPageData struct {
	ContractAddress      string
	InterfaceDescription string
	ExplorerURL          string
	MinNextBid           decimal.Decimal
	models.ContractQueryResult
}

// handleIndexPage renders the current auction state. Read failures are shown
// inline and never change the status code.
func (s *APIServer) handleIndexPage(c *fiber.Ctx) error {
	result := s.auctionService.Fetch(c.UserContext())

	explorerURL, err := utils.GetExplorerAddressUrl(s.config.ExplorerURL, s.config.ContractAddress)
	if err != nil {
		log.Printf("Error building explorer url: %v", err)
	}

	data := IndexPageData{
		ContractAddress:      s.config.ContractAddress,
		InterfaceDescription: s.auctionService.InterfaceDescription(),
		ExplorerURL:          explorerURL,
		MinNextBid:           utils.MinNextBid(result.WinningAmount),
		ContractQueryResult:  result,
	}

	var buf bytes.Buffer
	if err := s.indexTemplate.Execute(&buf, data); err != nil {
		log.Printf("Error rendering index template: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error rendering template")
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
