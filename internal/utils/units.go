package utils

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of fractional digits between wei and ether
const EtherDecimals = 18

// minBidIncrement is the factor a new offer must exceed the current winner by
var minBidIncrement = decimal.RequireFromString("1.05")

// WeiToEther converts an amount in wei to ether without losing precision
func WeiToEther(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -EtherDecimals)
}

// MinNextBid returns the smallest offer that outbids the current winning amount
func MinNextBid(winningAmount decimal.Decimal) decimal.Decimal {
	return winningAmount.Mul(minBidIncrement)
}
