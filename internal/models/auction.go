package models

import (
	"github.com/shopspring/decimal"
)

// FallbackWinner marks the winner field of a failed query
const FallbackWinner = "Error"

// Offer is a single bid as returned by the contract
type Offer struct {
	BidderAddress string          `json:"bidder_address"`
	Amount        decimal.Decimal `json:"amount"` // in ether
}

// ContractQueryResult is the auction state read for one request.
// A non-empty Error means the read failed and the other fields hold the fallback values.
type ContractQueryResult struct {
	WinnerAddress string          `json:"winner_address"`
	WinningAmount decimal.Decimal `json:"winning_amount"` // in ether
	Offers        []Offer         `json:"offers"`
	Error         string          `json:"error,omitempty"`
}

// FallbackResult is the record returned whenever reading the contract fails
func FallbackResult(err error) ContractQueryResult {
	message := "unknown error"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return ContractQueryResult{
		WinnerAddress: FallbackWinner,
		WinningAmount: decimal.Zero,
		Offers:        []Offer{},
		Error:         message,
	}
}

// Failed reports whether the record is a fallback record
func (r ContractQueryResult) Failed() bool {
	return r.Error != ""
}
